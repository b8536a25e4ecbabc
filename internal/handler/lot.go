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

// CreateLot handles POST /v1/lots. The number range is fixed at creation.
func (h *Handler) CreateLot(c echo.Context) error {
	var body struct {
		ActivityID  uint64  `json:"activity_id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		RangeStart  *int    `json:"range_start"`
		RangeEnd    *int    `json:"range_end"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.RangeStart == nil || body.RangeEnd == nil {
		return badRequest(c, "name, range_start and range_end are required")
	}
	if *body.RangeStart < 0 || *body.RangeEnd < *body.RangeStart {
		return badRequest(c, "range_end must not be below range_start")
	}

	id, err := utils.NewID()
	if err != nil {
		return fail(c, err)
	}
	lot := &model.Lot{
		ID:          id,
		ActivityID:  body.ActivityID,
		Name:        name,
		Description: body.Description,
		RangeStart:  *body.RangeStart,
		RangeEnd:    *body.RangeEnd,
	}
	if err := h.Lots.Create(c.Request().Context(), lot); err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "activity does not exist")
		}
		return fail(c, err)
	}
	created, err := h.Lots.GetByID(c.Request().Context(), lot.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListLots handles GET /v1/lots.
func (h *Handler) ListLots(c echo.Context) error {
	lots, err := h.Lots.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if lots == nil {
		lots = []model.Lot{}
	}
	return c.JSON(http.StatusOK, lots)
}

// GetLot handles GET /v1/lots/:id.
func (h *Handler) GetLot(c echo.Context) error {
	lot, err := h.Lots.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, lot)
}

// UpdateLot handles PUT /v1/lots/:id. Only name and description change;
// the number range is immutable.
func (h *Handler) UpdateLot(c echo.Context) error {
	cur, err := h.Lots.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := cur.Name
	if body.Name != nil {
		name = strings.TrimSpace(*body.Name)
		if name == "" {
			return badRequest(c, "name must not be empty")
		}
	}
	desc := cur.Description
	if body.Description != nil {
		desc = body.Description
	}

	if err := h.Lots.UpdateMeta(c.Request().Context(), cur.ID, name, desc); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Lots.GetByID(c.Request().Context(), cur.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteLot handles DELETE /v1/lots/:id. A lot with issued tickets cannot
// be removed.
func (h *Handler) DeleteLot(c echo.Context) error {
	if err := h.Lots.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// IssueTickets handles POST /v1/lots/:id/tickets: one AVAILABLE ticket per
// number in the lot's range, all or nothing. Re-issuing a lot whose
// numbers already exist yields 409.
func (h *Handler) IssueTickets(c echo.Context) error {
	lot, err := h.Lots.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}

	var body struct {
		UnitPrice decimal.Decimal `json:"unit_price"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.UnitPrice.IsNegative() {
		return badRequest(c, "unit_price must not be negative")
	}

	tickets, err := h.Issuer.Generate(c.Request().Context(), lot, body.UnitPrice)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "lot already has tickets in this range"})
		}
		return fail(c, err)
	}

	// Best effort: the response does not depend on the broker.
	_ = queue.PublishTicketsIssued(c.Request().Context(), queue.TicketsIssuedEvent{
		LotID:      lot.ID,
		LotName:    lot.Name,
		ActivityID: lot.ActivityID,
		RangeStart: lot.RangeStart,
		RangeEnd:   lot.RangeEnd,
		Count:      len(tickets),
		UnitPrice:  body.UnitPrice.String(),
		IssuedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"lot_id":  lot.ID,
		"count":   len(tickets),
		"tickets": tickets,
	})
}

// ListLotTickets handles GET /v1/lots/:id/tickets.
func (h *Handler) ListLotTickets(c echo.Context) error {
	lot, err := h.Lots.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}
	tickets, err := h.Tickets.ListByLot(c.Request().Context(), lot.ID)
	if err != nil {
		return fail(c, err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}

// LotTicketsTotal handles GET /v1/lots/:id/tickets/total: the sum of unit
// prices over the lot's PAID tickets.
func (h *Handler) LotTicketsTotal(c echo.Context) error {
	lot, err := h.Lots.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLotNotFound) {
			return notFound(c, "lot not found")
		}
		return fail(c, err)
	}
	total, err := h.Tickets.SumPaidByLot(c.Request().Context(), lot.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"lot_id": lot.ID, "total": total})
}
