package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"assogest/internal/model"
	"assogest/internal/queue"
	"assogest/internal/repository"
	"assogest/internal/utils"
)

// ticketBody is the write payload for tickets. Status is free text and is
// folded into the enum by model.ParseTicketStatus, so legacy spellings
// like "Payé" or "assigné" keep working.
type ticketBody struct {
	LotID       *string          `json:"lot_id"`
	Number      *int             `json:"number"`
	MemberID    *string          `json:"member_id"`
	Status      *string          `json:"status"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	PaymentDate *string          `json:"payment_date"`
}

// CreateTicket handles POST /v1/tickets for one-off tickets outside batch
// issuance.
func (h *Handler) CreateTicket(c echo.Context) error {
	var body ticketBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.LotID == nil || body.Number == nil {
		return badRequest(c, "lot_id and number are required")
	}

	lot, err := h.Lots.GetByID(c.Request().Context(), *body.LotID)
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return badRequest(c, "lot does not exist")
		}
		return fail(c, err)
	}
	if !lot.InRange(*body.Number) {
		return badRequest(c, "number outside the lot's range")
	}

	status := model.StatusAvailable
	if body.Status != nil {
		status, err = model.ParseTicketStatus(*body.Status)
		if err != nil {
			return badRequest(c, "unknown status")
		}
	}

	memberID := body.MemberID
	if memberID != nil && strings.TrimSpace(*memberID) == "" {
		memberID = nil
	}
	if status == model.StatusAvailable && memberID != nil {
		return badRequest(c, "an available ticket cannot have a member")
	}
	if status != model.StatusAvailable && memberID == nil {
		return badRequest(c, "member_id is required for assigned or paid tickets")
	}

	var paymentDate *string
	if status == model.StatusPaid {
		d := today()
		if body.PaymentDate != nil {
			parsed, ok := parseDate(*body.PaymentDate)
			if !ok {
				return badRequest(c, "payment_date must be YYYY-MM-DD")
			}
			d = parsed
		}
		paymentDate = &d
	} else if body.PaymentDate != nil {
		return badRequest(c, "payment_date is only valid for paid tickets")
	}

	price := decimal.Zero
	if body.UnitPrice != nil {
		if body.UnitPrice.IsNegative() {
			return badRequest(c, "unit_price must not be negative")
		}
		price = *body.UnitPrice
	}

	id, err := utils.NewID()
	if err != nil {
		return fail(c, err)
	}
	t := &model.Ticket{
		ID:          id,
		LotID:       lot.ID,
		Number:      *body.Number,
		MemberID:    memberID,
		Status:      status,
		UnitPrice:   price,
		PaymentDate: paymentDate,
	}
	if err := h.Tickets.Create(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "number already taken in this lot"})
		}
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "member does not exist")
		}
		return fail(c, err)
	}
	created, err := h.Tickets.GetByID(c.Request().Context(), t.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListTickets handles GET /v1/tickets.
func (h *Handler) ListTickets(c echo.Context) error {
	tickets, err := h.Tickets.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}

// GetTicket handles GET /v1/tickets/:id.
func (h *Handler) GetTicket(c echo.Context) error {
	t, err := h.Tickets.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return notFound(c, "ticket not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// resolveTicketState turns the current ticket and a write payload into a
// TicketUpdate, enforcing the lifecycle rules: a member is present exactly
// on ASSIGNED and PAID tickets, a payment date exactly on PAID ones
// (defaulted to today when the transition supplies none), and a move back
// to AVAILABLE clears both in the same update. Lot and number handling
// stay with the caller since they need a lot lookup.
func resolveTicketState(cur *model.Ticket, body ticketBody) (repository.TicketUpdate, error) {
	var upd repository.TicketUpdate

	status := cur.Status
	if body.Status != nil {
		parsed, err := model.ParseTicketStatus(*body.Status)
		if err != nil {
			return upd, errors.New("unknown status")
		}
		status = parsed
		if status != cur.Status {
			upd.Status = &status
		}
	}

	memberID := cur.MemberID
	if body.MemberID != nil {
		if strings.TrimSpace(*body.MemberID) == "" {
			memberID = nil
			upd.ClearMember = true
		} else {
			memberID = body.MemberID
			upd.MemberID = body.MemberID
		}
	}

	switch status {
	case model.StatusAvailable:
		if upd.MemberID != nil {
			return upd, errors.New("an available ticket cannot have a member")
		}
		if body.PaymentDate != nil {
			return upd, errors.New("payment_date is only valid for paid tickets")
		}
		if cur.MemberID != nil {
			upd.ClearMember = true
			upd.MemberID = nil
		}
		if cur.PaymentDate != nil {
			upd.ClearPayment = true
		}
	case model.StatusAssigned:
		if memberID == nil {
			return upd, errors.New("member_id is required for assigned tickets")
		}
		if body.PaymentDate != nil {
			return upd, errors.New("payment_date is only valid for paid tickets")
		}
		if cur.PaymentDate != nil {
			upd.ClearPayment = true
		}
	case model.StatusPaid:
		if memberID == nil {
			return upd, errors.New("member_id is required for paid tickets")
		}
		if body.PaymentDate != nil {
			parsed, ok := parseDate(*body.PaymentDate)
			if !ok {
				return upd, errors.New("payment_date must be YYYY-MM-DD")
			}
			upd.PaymentDate = &parsed
		} else if cur.PaymentDate == nil {
			d := today()
			upd.PaymentDate = &d
		}
	}

	if body.UnitPrice != nil {
		if body.UnitPrice.IsNegative() {
			return upd, errors.New("unit_price must not be negative")
		}
		upd.UnitPrice = body.UnitPrice
	}
	return upd, nil
}

// UpdateTicket handles PUT /v1/tickets/:id. Status moves freely between
// the three states; landing on AVAILABLE clears the member and payment
// date in the same update.
func (h *Handler) UpdateTicket(c echo.Context) error {
	cur, err := h.Tickets.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return notFound(c, "ticket not found")
		}
		return fail(c, err)
	}

	var body ticketBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.LotID != nil && *body.LotID != cur.LotID {
		return badRequest(c, "a ticket cannot move to another lot")
	}

	upd, err := resolveTicketState(cur, body)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if body.Number != nil && *body.Number != cur.Number {
		lot, err := h.Lots.GetByID(c.Request().Context(), cur.LotID)
		if err != nil {
			return fail(c, err)
		}
		if !lot.InRange(*body.Number) {
			return badRequest(c, "number outside the lot's range")
		}
		upd.Number = body.Number
	}

	fresh, err := h.Tickets.Update(c.Request().Context(), cur.ID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return notFound(c, "ticket not found")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "number already taken in this lot"})
		}
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "member does not exist")
		}
		return fail(c, err)
	}

	if fresh.Status == model.StatusPaid && cur.Status != model.StatusPaid {
		ev := queue.TicketPaidEvent{
			TicketID:  fresh.ID,
			LotID:     fresh.LotID,
			Number:    fresh.Number,
			UnitPrice: fresh.UnitPrice.String(),
			PaidAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if fresh.MemberID != nil {
			ev.MemberID = *fresh.MemberID
		}
		if fresh.PaymentDate != nil {
			ev.PaymentDate = *fresh.PaymentDate
		}
		_ = queue.PublishTicketPaid(c.Request().Context(), ev)
	}

	return c.JSON(http.StatusOK, fresh)
}

// DeleteTicket handles DELETE /v1/tickets/:id.
func (h *Handler) DeleteTicket(c echo.Context) error {
	if err := h.Tickets.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return notFound(c, "ticket not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// TicketsTotal handles GET /v1/tickets/total: the sum of unit prices over
// every PAID ticket.
func (h *Handler) TicketsTotal(c echo.Context) error {
	total, err := h.Tickets.SumPaidAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}
