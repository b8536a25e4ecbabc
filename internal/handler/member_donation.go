package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"assogest/internal/model"
	"assogest/internal/repository"
)

// CreateMemberDonation handles POST /v1/member-donations.
func (h *Handler) CreateMemberDonation(c echo.Context) error {
	var body struct {
		MemberID     string `json:"member_id"`
		ActivityID   uint64 `json:"activity_id"`
		Amount       string `json:"amount"`
		DonationDate string `json:"donation_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(body.MemberID) == "" {
		return badRequest(c, "member_id is required")
	}
	if body.ActivityID == 0 {
		return badRequest(c, "activity_id is required")
	}
	amount, ok := parseAmount(body.Amount)
	if !ok {
		return badRequest(c, "amount must be a non-negative decimal")
	}
	date, ok := parseDate(body.DonationDate)
	if !ok {
		return badRequest(c, "donation_date must be YYYY-MM-DD")
	}

	d := &model.MemberDonation{
		MemberID:     body.MemberID,
		ActivityID:   body.ActivityID,
		Amount:       amount,
		DonationDate: date,
	}
	if err := h.MemberDonations.Create(c.Request().Context(), d); err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "member or activity does not exist")
		}
		return fail(c, err)
	}
	created, err := h.MemberDonations.GetByID(c.Request().Context(), d.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListMemberDonations handles GET /v1/member-donations.
func (h *Handler) ListMemberDonations(c echo.Context) error {
	list, err := h.MemberDonations.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.MemberDonation{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetMemberDonation handles GET /v1/member-donations/:id.
func (h *Handler) GetMemberDonation(c echo.Context) error {
	d, err := h.MemberDonations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberDonationNotFound) {
			return notFound(c, "member donation not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// UpdateMemberDonation handles PUT /v1/member-donations/:id.
func (h *Handler) UpdateMemberDonation(c echo.Context) error {
	cur, err := h.MemberDonations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberDonationNotFound) {
			return notFound(c, "member donation not found")
		}
		return fail(c, err)
	}

	var body struct {
		MemberID     *string `json:"member_id"`
		ActivityID   *uint64 `json:"activity_id"`
		Amount       *string `json:"amount"`
		DonationDate *string `json:"donation_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.MemberID != nil {
		if strings.TrimSpace(*body.MemberID) == "" {
			return badRequest(c, "member_id must not be empty")
		}
		cur.MemberID = *body.MemberID
	}
	if body.ActivityID != nil {
		if *body.ActivityID == 0 {
			return badRequest(c, "activity_id must not be zero")
		}
		cur.ActivityID = *body.ActivityID
	}
	if body.Amount != nil {
		amount, ok := parseAmount(*body.Amount)
		if !ok {
			return badRequest(c, "amount must be a non-negative decimal")
		}
		cur.Amount = amount
	}
	if body.DonationDate != nil {
		date, ok := parseDate(*body.DonationDate)
		if !ok {
			return badRequest(c, "donation_date must be YYYY-MM-DD")
		}
		cur.DonationDate = date
	}

	if err := h.MemberDonations.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "member or activity does not exist")
		}
		return fail(c, err)
	}
	fresh, err := h.MemberDonations.GetByID(c.Request().Context(), cur.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteMemberDonation handles DELETE /v1/member-donations/:id.
func (h *Handler) DeleteMemberDonation(c echo.Context) error {
	if err := h.MemberDonations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrMemberDonationNotFound) {
			return notFound(c, "member donation not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
