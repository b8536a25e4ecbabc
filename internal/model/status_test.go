package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketStatusPaidVariants(t *testing.T) {
	for _, in := range []string{"PAID", "paid", "Payé", "paye", " payé ", "payment pending"} {
		got, err := ParseTicketStatus(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, StatusPaid, got, "input %q", in)
	}
}

func TestParseTicketStatusAssignedVariants(t *testing.T) {
	for _, in := range []string{"ASSIGNED", "assigné", "Assigne", "assignment"} {
		got, err := ParseTicketStatus(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, StatusAssigned, got, "input %q", in)
	}
}

func TestParseTicketStatusAvailableVariants(t *testing.T) {
	for _, in := range []string{"", "AVAILABLE", "available", "disponible", "Disponible", "  "} {
		got, err := ParseTicketStatus(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, StatusAvailable, got, "input %q", in)
	}
}

func TestParseTicketStatusRejectsUnknown(t *testing.T) {
	for _, in := range []string{"sold", "réservé", "free", "PAI D x"} {
		_, err := ParseTicketStatus(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestTicketStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusAssigned.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.False(t, TicketStatus("SOLD").Valid())
	assert.False(t, TicketStatus("").Valid())
}
