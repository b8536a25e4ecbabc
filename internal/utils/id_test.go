package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDShape(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)
	assert.Len(t, id, 32)
	_, err = hex.DecodeString(id)
	assert.NoError(t, err)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewID()
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
