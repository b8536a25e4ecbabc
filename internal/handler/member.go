package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"assogest/internal/model"
	"assogest/internal/repository"
)

// CreateMember handles POST /v1/members.
func (h *Handler) CreateMember(c echo.Context) error {
	var body struct {
		LastName  string  `json:"last_name"`
		FirstName string  `json:"first_name"`
		Contact   *string `json:"contact"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	last := strings.TrimSpace(body.LastName)
	first := strings.TrimSpace(body.FirstName)
	if last == "" || first == "" {
		return badRequest(c, "last_name and first_name are required")
	}

	m := &model.Member{LastName: last, FirstName: first, Contact: body.Contact}
	if err := h.Members.Create(c.Request().Context(), m); err != nil {
		return fail(c, err)
	}
	created, err := h.Members.GetByID(c.Request().Context(), m.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListMembers handles GET /v1/members.
func (h *Handler) ListMembers(c echo.Context) error {
	list, err := h.Members.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Member{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetMember handles GET /v1/members/:id.
func (h *Handler) GetMember(c echo.Context) error {
	m, err := h.Members.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return notFound(c, "member not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateMember handles PUT /v1/members/:id.
func (h *Handler) UpdateMember(c echo.Context) error {
	cur, err := h.Members.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return notFound(c, "member not found")
		}
		return fail(c, err)
	}

	var body struct {
		LastName  *string `json:"last_name"`
		FirstName *string `json:"first_name"`
		Contact   *string `json:"contact"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.LastName != nil {
		last := strings.TrimSpace(*body.LastName)
		if last == "" {
			return badRequest(c, "last_name must not be empty")
		}
		cur.LastName = last
	}
	if body.FirstName != nil {
		first := strings.TrimSpace(*body.FirstName)
		if first == "" {
			return badRequest(c, "first_name must not be empty")
		}
		cur.FirstName = first
	}
	if body.Contact != nil {
		cur.Contact = body.Contact
	}

	if err := h.Members.Update(c.Request().Context(), cur); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Members.GetByID(c.Request().Context(), cur.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteMember handles DELETE /v1/members/:id. A member still holding
// tickets cannot be removed.
func (h *Handler) DeleteMember(c echo.Context) error {
	if err := h.Members.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return notFound(c, "member not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
