package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"assogest/internal/model"
	"assogest/internal/repository"
)

// CreateExpense handles POST /v1/expenses.
func (h *Handler) CreateExpense(c echo.Context) error {
	var body struct {
		ActivityID  uint64  `json:"activity_id"`
		Name        string  `json:"name"`
		Receipt     *string `json:"receipt"`
		ExpenseDate string  `json:"expense_date"`
		Amount      string  `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}
	date, ok := parseDate(body.ExpenseDate)
	if !ok {
		return badRequest(c, "expense_date must be YYYY-MM-DD")
	}
	amount, ok := parseAmount(body.Amount)
	if !ok {
		return badRequest(c, "amount must be a non-negative decimal")
	}

	e := &model.Expense{
		ActivityID:  body.ActivityID,
		Name:        name,
		Receipt:     body.Receipt,
		ExpenseDate: date,
		Amount:      amount,
	}
	if err := h.Expenses.Create(c.Request().Context(), e); err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "activity does not exist")
		}
		return fail(c, err)
	}
	created, err := h.Expenses.GetByID(c.Request().Context(), e.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListExpenses handles GET /v1/expenses.
func (h *Handler) ListExpenses(c echo.Context) error {
	list, err := h.Expenses.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Expense{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetExpense handles GET /v1/expenses/:id.
func (h *Handler) GetExpense(c echo.Context) error {
	e, err := h.Expenses.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return notFound(c, "expense not found")
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

// UpdateExpense handles PUT /v1/expenses/:id.
func (h *Handler) UpdateExpense(c echo.Context) error {
	cur, err := h.Expenses.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return notFound(c, "expense not found")
		}
		return fail(c, err)
	}

	var body struct {
		ActivityID  *uint64 `json:"activity_id"`
		Name        *string `json:"name"`
		Receipt     *string `json:"receipt"`
		ExpenseDate *string `json:"expense_date"`
		Amount      *string `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ActivityID != nil {
		cur.ActivityID = *body.ActivityID
	}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return badRequest(c, "name must not be empty")
		}
		cur.Name = name
	}
	if body.Receipt != nil {
		cur.Receipt = body.Receipt
	}
	if body.ExpenseDate != nil {
		date, ok := parseDate(*body.ExpenseDate)
		if !ok {
			return badRequest(c, "expense_date must be YYYY-MM-DD")
		}
		cur.ExpenseDate = date
	}
	if body.Amount != nil {
		amount, ok := parseAmount(*body.Amount)
		if !ok {
			return badRequest(c, "amount must be a non-negative decimal")
		}
		cur.Amount = amount
	}

	if err := h.Expenses.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			return badRequest(c, "activity does not exist")
		}
		return fail(c, err)
	}
	fresh, err := h.Expenses.GetByID(c.Request().Context(), cur.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteExpense handles DELETE /v1/expenses/:id.
func (h *Handler) DeleteExpense(c echo.Context) error {
	if err := h.Expenses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return notFound(c, "expense not found")
		}
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListActivityExpenses handles GET /v1/activities/:id/expenses.
func (h *Handler) ListActivityExpenses(c echo.Context) error {
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
	list, err := h.Expenses.ListByActivity(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Expense{}
	}
	return c.JSON(http.StatusOK, list)
}

// ActivityExpensesTotal handles GET /v1/activities/:id/expenses/total.
func (h *Handler) ActivityExpensesTotal(c echo.Context) error {
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
	total, err := h.Expenses.SumByActivity(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"activity_id": id, "total": total})
}

// ExpensesTotal handles GET /v1/expenses/total.
func (h *Handler) ExpensesTotal(c echo.Context) error {
	total, err := h.Expenses.SumAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}
