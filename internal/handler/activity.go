package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"assogest/internal/model"
	"assogest/internal/repository"
)

func activityID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// CreateActivity handles POST /v1/activities.
func (h *Handler) CreateActivity(c echo.Context) error {
	var body struct {
		Name         string  `json:"name"`
		Description  *string `json:"description"`
		ActivityDate string  `json:"activity_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}
	date, ok := parseDate(body.ActivityDate)
	if !ok {
		return badRequest(c, "activity_date must be YYYY-MM-DD")
	}

	a := &model.Activity{Name: name, Description: body.Description, ActivityDate: date}
	if err := h.Activities.Create(c.Request().Context(), a); err != nil {
		return fail(c, err)
	}
	created, err := h.Activities.GetByID(c.Request().Context(), a.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListActivities handles GET /v1/activities.
func (h *Handler) ListActivities(c echo.Context) error {
	list, err := h.Activities.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Activity{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetActivity handles GET /v1/activities/:id.
func (h *Handler) GetActivity(c echo.Context) error {
	id, ok := activityID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	a, err := h.Activities.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return notFound(c, "activity not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// UpdateActivity handles PUT /v1/activities/:id. Absent fields keep their
// current value.
func (h *Handler) UpdateActivity(c echo.Context) error {
	id, ok := activityID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	cur, err := h.Activities.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return notFound(c, "activity not found")
		}
		return fail(c, err)
	}

	var body struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		ActivityDate *string `json:"activity_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return badRequest(c, "name must not be empty")
		}
		cur.Name = name
	}
	if body.Description != nil {
		cur.Description = body.Description
	}
	if body.ActivityDate != nil {
		date, ok := parseDate(*body.ActivityDate)
		if !ok {
			return badRequest(c, "activity_date must be YYYY-MM-DD")
		}
		cur.ActivityDate = date
	}

	if err := h.Activities.Update(c.Request().Context(), cur); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Activities.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteActivity handles DELETE /v1/activities/:id.
func (h *Handler) DeleteActivity(c echo.Context) error {
	id, ok := activityID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Activities.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return notFound(c, "activity not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListActivityLots handles GET /v1/activities/:id/lots.
func (h *Handler) ListActivityLots(c echo.Context) error {
	id, ok := activityID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if _, err := h.Activities.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return notFound(c, "activity not found")
		}
		return fail(c, err)
	}
	lots, err := h.Lots.ListByActivity(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if lots == nil {
		lots = []model.Lot{}
	}
	return c.JSON(http.StatusOK, lots)
}

// ListActivityTickets handles GET /v1/activities/:id/tickets.
func (h *Handler) ListActivityTickets(c echo.Context) error {
	id, ok := activityID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	if _, err := h.Activities.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return notFound(c, "activity not found")
		}
		return fail(c, err)
	}
	tickets, err := h.Tickets.ListByActivity(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}
