package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assogest/internal/model"
)

func TestBuildTicketsCoversRange(t *testing.T) {
	lot := &model.Lot{ID: "lot1", RangeStart: 100, RangeEnd: 104}
	price := decimal.RequireFromString("2.50")

	tickets, err := BuildTickets(lot, price)
	require.NoError(t, err)
	require.Len(t, tickets, 5)

	for i, tk := range tickets {
		assert.Equal(t, lot.ID, tk.LotID)
		assert.Equal(t, 100+i, tk.Number)
		assert.Equal(t, model.StatusAvailable, tk.Status)
		assert.True(t, price.Equal(tk.UnitPrice))
		assert.Nil(t, tk.MemberID)
		assert.Nil(t, tk.PaymentDate)
		assert.Len(t, tk.ID, 32)
	}
}

func TestBuildTicketsUniqueIDs(t *testing.T) {
	lot := &model.Lot{ID: "lot1", RangeStart: 1, RangeEnd: 50}
	tickets, err := BuildTickets(lot, decimal.Zero)
	require.NoError(t, err)

	seen := make(map[string]bool, len(tickets))
	for _, tk := range tickets {
		assert.False(t, seen[tk.ID], "duplicate id %s", tk.ID)
		seen[tk.ID] = true
	}
}

func TestBuildTicketsSingleNumberRange(t *testing.T) {
	lot := &model.Lot{ID: "lot1", RangeStart: 7, RangeEnd: 7}
	tickets, err := BuildTickets(lot, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, 7, tickets[0].Number)
}

func TestBuildTicketsRejectsInvertedRange(t *testing.T) {
	lot := &model.Lot{ID: "lot1", RangeStart: 10, RangeEnd: 9}
	_, err := BuildTickets(lot, decimal.Zero)
	assert.Error(t, err)
}
