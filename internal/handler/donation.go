package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"assogest/internal/model"
	"assogest/internal/repository"
)

// CreateDonation handles POST /v1/donations.
func (h *Handler) CreateDonation(c echo.Context) error {
	var body struct {
		DonationDate string  `json:"donation_date"`
		DonorName    string  `json:"donor_name"`
		Amount       string  `json:"amount"`
		Receipt      *string `json:"receipt"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	donor := strings.TrimSpace(body.DonorName)
	if donor == "" {
		return badRequest(c, "donor_name is required")
	}
	date, ok := parseDate(body.DonationDate)
	if !ok {
		return badRequest(c, "donation_date must be YYYY-MM-DD")
	}
	amount, ok := parseAmount(body.Amount)
	if !ok {
		return badRequest(c, "amount must be a non-negative decimal")
	}

	d := &model.Donation{
		DonationDate: date,
		DonorName:    donor,
		Amount:       amount,
		Receipt:      body.Receipt,
	}
	if err := h.Donations.Create(c.Request().Context(), d); err != nil {
		return fail(c, err)
	}
	created, err := h.Donations.GetByID(c.Request().Context(), d.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListDonations handles GET /v1/donations.
func (h *Handler) ListDonations(c echo.Context) error {
	list, err := h.Donations.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Donation{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetDonation handles GET /v1/donations/:id.
func (h *Handler) GetDonation(c echo.Context) error {
	d, err := h.Donations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return notFound(c, "donation not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// UpdateDonation handles PUT /v1/donations/:id.
func (h *Handler) UpdateDonation(c echo.Context) error {
	cur, err := h.Donations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return notFound(c, "donation not found")
		}
		return fail(c, err)
	}

	var body struct {
		DonationDate *string `json:"donation_date"`
		DonorName    *string `json:"donor_name"`
		Amount       *string `json:"amount"`
		Receipt      *string `json:"receipt"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DonationDate != nil {
		date, ok := parseDate(*body.DonationDate)
		if !ok {
			return badRequest(c, "donation_date must be YYYY-MM-DD")
		}
		cur.DonationDate = date
	}
	if body.DonorName != nil {
		donor := strings.TrimSpace(*body.DonorName)
		if donor == "" {
			return badRequest(c, "donor_name must not be empty")
		}
		cur.DonorName = donor
	}
	if body.Amount != nil {
		amount, ok := parseAmount(*body.Amount)
		if !ok {
			return badRequest(c, "amount must be a non-negative decimal")
		}
		cur.Amount = amount
	}
	if body.Receipt != nil {
		cur.Receipt = body.Receipt
	}

	if err := h.Donations.Update(c.Request().Context(), cur); err != nil {
		return fail(c, err)
	}
	fresh, err := h.Donations.GetByID(c.Request().Context(), cur.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteDonation handles DELETE /v1/donations/:id.
func (h *Handler) DeleteDonation(c echo.Context) error {
	if err := h.Donations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return notFound(c, "donation not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DonationsTotal handles GET /v1/donations/total.
func (h *Handler) DonationsTotal(c echo.Context) error {
	total, err := h.Donations.SumAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}
