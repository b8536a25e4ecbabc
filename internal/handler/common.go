// Package handler contains the HTTP handlers for every resource exposed by
// the API.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"assogest/internal/repository"
	"assogest/internal/service"
)

// Handler bundles the repositories and services used by the resource
// handlers.
type Handler struct {
	Activities      *repository.ActivityRepo
	Members         *repository.MemberRepo
	Lots            *repository.LotRepo
	Tickets         *repository.TicketRepo
	Expenses        *repository.ExpenseRepo
	Donations       *repository.DonationRepo
	MemberDonations *repository.MemberDonationRepo
	Issuer          *service.Issuer
}

// New constructs a Handler and panics on a nil dependency.
func New(
	activities *repository.ActivityRepo,
	members *repository.MemberRepo,
	lots *repository.LotRepo,
	tickets *repository.TicketRepo,
	expenses *repository.ExpenseRepo,
	donations *repository.DonationRepo,
	memberDonations *repository.MemberDonationRepo,
	issuer *service.Issuer,
) *Handler {
	if activities == nil || members == nil || lots == nil || tickets == nil ||
		expenses == nil || donations == nil || memberDonations == nil || issuer == nil {
		panic("nil dependency passed to handler.New")
	}
	return &Handler{
		Activities:      activities,
		Members:         members,
		Lots:            lots,
		Tickets:         tickets,
		Expenses:        expenses,
		Donations:       donations,
		MemberDonations: memberDonations,
		Issuer:          issuer,
	}
}

// fail maps repository sentinels onto HTTP responses. Not-found sentinels
// are handled per resource; this covers the write-failure family.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate entry"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "dependent records exist"})
	case errors.Is(err, repository.ErrBadReference):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced record does not exist"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": msg})
}

// parseDate validates a YYYY-MM-DD string.
func parseDate(s string) (string, bool) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", false
	}
	return s, true
}

// parseAmount parses a non-negative decimal amount from its string form.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// today returns the current UTC date in YYYY-MM-DD form. Used as the
// default payment date when a ticket is marked paid without one.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
