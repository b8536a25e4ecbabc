package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLotSize(t *testing.T) {
	l := Lot{RangeStart: 100, RangeEnd: 149}
	assert.Equal(t, 50, l.Size())

	single := Lot{RangeStart: 5, RangeEnd: 5}
	assert.Equal(t, 1, single.Size())
}

func TestLotInRange(t *testing.T) {
	l := Lot{RangeStart: 10, RangeEnd: 20}
	assert.True(t, l.InRange(10))
	assert.True(t, l.InRange(15))
	assert.True(t, l.InRange(20))
	assert.False(t, l.InRange(9))
	assert.False(t, l.InRange(21))
}
