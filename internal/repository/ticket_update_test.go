package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"assogest/internal/model"
)

func TestBuildTicketUpdateEmpty(t *testing.T) {
	set, args := buildTicketUpdate(TicketUpdate{})
	assert.Empty(t, set)
	assert.Nil(t, args)
}

func TestBuildTicketUpdateSingleField(t *testing.T) {
	n := 42
	set, args := buildTicketUpdate(TicketUpdate{Number: &n})
	assert.Equal(t, "number = ?, updated_at = CURRENT_TIMESTAMP", set)
	assert.Equal(t, []interface{}{42}, args)
}

func TestBuildTicketUpdateFullPayment(t *testing.T) {
	member := "MBR-007"
	status := model.StatusPaid
	price := decimal.RequireFromString("5.00")
	date := "2025-06-01"

	set, args := buildTicketUpdate(TicketUpdate{
		MemberID:    &member,
		Status:      &status,
		UnitPrice:   &price,
		PaymentDate: &date,
	})
	assert.Equal(t, "member_id = ?, status = ?, unit_price = ?, payment_date = ?, updated_at = CURRENT_TIMESTAMP", set)
	assert.Len(t, args, 4)
	assert.Equal(t, member, args[0])
	assert.Equal(t, status, args[1])
}

func TestBuildTicketUpdateClearsOverrideValues(t *testing.T) {
	member := "MBR-001"
	date := "2025-06-01"
	status := model.StatusAvailable

	set, args := buildTicketUpdate(TicketUpdate{
		MemberID:     &member,
		ClearMember:  true,
		Status:       &status,
		PaymentDate:  &date,
		ClearPayment: true,
	})
	assert.Equal(t, "member_id = NULL, status = ?, payment_date = NULL, updated_at = CURRENT_TIMESTAMP", set)
	assert.Equal(t, []interface{}{status}, args)
}
