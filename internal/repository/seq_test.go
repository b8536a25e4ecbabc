package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpSeqIDFirstValue(t *testing.T) {
	assert.Equal(t, "MBR-001", bumpSeqID("", "MBR-", 3))
	assert.Equal(t, "U0001", bumpSeqID("", "U", 4))
}

func TestBumpSeqIDIncrements(t *testing.T) {
	assert.Equal(t, "MBR-002", bumpSeqID("MBR-001", "MBR-", 3))
	assert.Equal(t, "DPS-010", bumpSeqID("DPS-009", "DPS-", 3))
	assert.Equal(t, "QTE-100", bumpSeqID("QTE-099", "QTE-", 3))
	assert.Equal(t, "SB-004", bumpSeqID("SB-003", "SB-", 3))
	assert.Equal(t, "U0042", bumpSeqID("U0041", "U", 4))
}

func TestBumpSeqIDGrowsPastPadding(t *testing.T) {
	assert.Equal(t, "MBR-1000", bumpSeqID("MBR-999", "MBR-", 3))
}

func TestBumpSeqIDMalformedRestartsSequence(t *testing.T) {
	assert.Equal(t, "MBR-001", bumpSeqID("garbage", "MBR-", 3))
	assert.Equal(t, "MBR-001", bumpSeqID("MBR-xyz", "MBR-", 3))
}
