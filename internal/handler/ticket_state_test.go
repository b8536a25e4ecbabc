package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assogest/internal/model"
)

func strPtr(s string) *string { return &s }

func assignedTicket() *model.Ticket {
	return &model.Ticket{
		ID:       "t1",
		LotID:    "lot1",
		Number:   10,
		MemberID: strPtr("MBR-001"),
		Status:   model.StatusAssigned,
	}
}

func paidTicket() *model.Ticket {
	t := assignedTicket()
	t.Status = model.StatusPaid
	t.PaymentDate = strPtr("2025-05-01")
	return t
}

func TestResolveTicketStateAssignedToPaidDefaultsDate(t *testing.T) {
	upd, err := resolveTicketState(assignedTicket(), ticketBody{Status: strPtr("payé")})
	require.NoError(t, err)

	require.NotNil(t, upd.Status)
	assert.Equal(t, model.StatusPaid, *upd.Status)
	require.NotNil(t, upd.PaymentDate)
	assert.Equal(t, today(), *upd.PaymentDate)
	assert.False(t, upd.ClearMember)
	assert.False(t, upd.ClearPayment)
}

func TestResolveTicketStateAssignedToPaidExplicitDate(t *testing.T) {
	upd, err := resolveTicketState(assignedTicket(), ticketBody{
		Status:      strPtr("PAID"),
		PaymentDate: strPtr("2025-06-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, upd.PaymentDate)
	assert.Equal(t, "2025-06-15", *upd.PaymentDate)
}

func TestResolveTicketStatePaidBackToAvailableClearsBoth(t *testing.T) {
	upd, err := resolveTicketState(paidTicket(), ticketBody{Status: strPtr("disponible")})
	require.NoError(t, err)

	require.NotNil(t, upd.Status)
	assert.Equal(t, model.StatusAvailable, *upd.Status)
	assert.True(t, upd.ClearMember)
	assert.True(t, upd.ClearPayment)
	assert.Nil(t, upd.MemberID)
	assert.Nil(t, upd.PaymentDate)
}

func TestResolveTicketStateAssignedBackToAvailableClearsMember(t *testing.T) {
	upd, err := resolveTicketState(assignedTicket(), ticketBody{Status: strPtr("available")})
	require.NoError(t, err)

	assert.True(t, upd.ClearMember)
	assert.False(t, upd.ClearPayment)
}

func TestResolveTicketStateAvailableToAssigned(t *testing.T) {
	cur := &model.Ticket{ID: "t1", LotID: "lot1", Number: 3, Status: model.StatusAvailable}
	upd, err := resolveTicketState(cur, ticketBody{
		Status:   strPtr("assigné"),
		MemberID: strPtr("MBR-007"),
	})
	require.NoError(t, err)

	require.NotNil(t, upd.Status)
	assert.Equal(t, model.StatusAssigned, *upd.Status)
	require.NotNil(t, upd.MemberID)
	assert.Equal(t, "MBR-007", *upd.MemberID)
	assert.Nil(t, upd.PaymentDate)
}

func TestResolveTicketStatePaidStaysPaidNoChanges(t *testing.T) {
	upd, err := resolveTicketState(paidTicket(), ticketBody{})
	require.NoError(t, err)

	// Existing payment date survives; nothing is touched.
	assert.Nil(t, upd.Status)
	assert.Nil(t, upd.PaymentDate)
	assert.False(t, upd.ClearMember)
	assert.False(t, upd.ClearPayment)
}

func TestResolveTicketStateReplacesMemberWhileAssigned(t *testing.T) {
	upd, err := resolveTicketState(assignedTicket(), ticketBody{MemberID: strPtr("MBR-099")})
	require.NoError(t, err)
	require.NotNil(t, upd.MemberID)
	assert.Equal(t, "MBR-099", *upd.MemberID)
	assert.False(t, upd.ClearMember)
}

func TestResolveTicketStateUnitPrice(t *testing.T) {
	price := decimal.RequireFromString("3.50")
	upd, err := resolveTicketState(assignedTicket(), ticketBody{UnitPrice: &price})
	require.NoError(t, err)
	require.NotNil(t, upd.UnitPrice)
	assert.True(t, price.Equal(*upd.UnitPrice))
}

func TestResolveTicketStateRejections(t *testing.T) {
	negative := decimal.RequireFromString("-1")
	cases := []struct {
		name string
		cur  *model.Ticket
		body ticketBody
	}{
		{
			name: "member on available ticket",
			cur:  &model.Ticket{Status: model.StatusAvailable},
			body: ticketBody{MemberID: strPtr("MBR-001")},
		},
		{
			name: "assigned without member",
			cur:  &model.Ticket{Status: model.StatusAvailable},
			body: ticketBody{Status: strPtr("assigned")},
		},
		{
			name: "paid after clearing member",
			cur:  paidTicket(),
			body: ticketBody{MemberID: strPtr("")},
		},
		{
			name: "payment date on assigned",
			cur:  assignedTicket(),
			body: ticketBody{PaymentDate: strPtr("2025-06-15")},
		},
		{
			name: "payment date on available",
			cur:  &model.Ticket{Status: model.StatusAvailable},
			body: ticketBody{PaymentDate: strPtr("2025-06-15")},
		},
		{
			name: "unknown status",
			cur:  assignedTicket(),
			body: ticketBody{Status: strPtr("vendu")},
		},
		{
			name: "malformed payment date",
			cur:  assignedTicket(),
			body: ticketBody{Status: strPtr("paid"), PaymentDate: strPtr("15/06/2025")},
		},
		{
			name: "negative unit price",
			cur:  assignedTicket(),
			body: ticketBody{UnitPrice: &negative},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveTicketState(tc.cur, tc.body)
			assert.Error(t, err)
		})
	}
}
