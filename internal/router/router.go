// Package router wires handlers, auth and the Redis middleware onto an
// Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"assogest/internal/config"
	"assogest/internal/handler"
	"assogest/internal/middleware"
)

// Register mounts every route. The health check and auth endpoints are
// public; everything else lives under /v1 behind JWT + role checks. The
// response cache and rate limiter are no-ops when rdb is nil.
func Register(e *echo.Echo, cfg config.Config, h *handler.Handler, a *handler.AuthHandler, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/v1/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)
	auth.POST("/refresh", a.Refresh)
	auth.POST("/logout", a.Logout)

	// JWT runs before the limiter so bucket keys can include the user ID.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.RequireRole("ADMIN", "TREASURER"),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	g.GET("/me", a.Me)

	// ---- Activities ----
	g.POST("/activities", h.CreateActivity)
	g.GET("/activities", h.ListActivities)
	g.GET("/activities/:id", h.GetActivity)
	g.PUT("/activities/:id", h.UpdateActivity)
	g.PATCH("/activities/:id", h.UpdateActivity)
	g.DELETE("/activities/:id", h.DeleteActivity)
	g.GET("/activities/:id/lots", h.ListActivityLots)
	g.GET("/activities/:id/tickets", h.ListActivityTickets)
	g.GET("/activities/:id/expenses", h.ListActivityExpenses)
	g.GET("/activities/:id/expenses/total", h.ActivityExpensesTotal)

	// ---- Members ----
	g.POST("/members", h.CreateMember)
	g.GET("/members", h.ListMembers)
	g.GET("/members/:id", h.GetMember)
	g.PUT("/members/:id", h.UpdateMember)
	g.PATCH("/members/:id", h.UpdateMember)
	g.DELETE("/members/:id", h.DeleteMember)

	// ---- Lots and issuance ----
	g.POST("/lots", h.CreateLot)
	g.GET("/lots", h.ListLots)
	g.GET("/lots/:id", h.GetLot)
	g.PUT("/lots/:id", h.UpdateLot)
	g.PATCH("/lots/:id", h.UpdateLot)
	g.DELETE("/lots/:id", h.DeleteLot)
	g.POST("/lots/:id/tickets", h.IssueTickets)
	g.GET("/lots/:id/tickets", h.ListLotTickets)
	g.GET("/lots/:id/tickets/total", h.LotTicketsTotal)

	// ---- Tickets ----
	g.POST("/tickets", h.CreateTicket)
	g.GET("/tickets", h.ListTickets)
	g.GET("/tickets/total", h.TicketsTotal)
	g.GET("/tickets/:id", h.GetTicket)
	g.PUT("/tickets/:id", h.UpdateTicket)
	g.PATCH("/tickets/:id", h.UpdateTicket)
	g.DELETE("/tickets/:id", h.DeleteTicket)

	// ---- Expenses ----
	g.POST("/expenses", h.CreateExpense)
	g.GET("/expenses", h.ListExpenses)
	g.GET("/expenses/total", h.ExpensesTotal)
	g.GET("/expenses/:id", h.GetExpense)
	g.PUT("/expenses/:id", h.UpdateExpense)
	g.PATCH("/expenses/:id", h.UpdateExpense)
	g.DELETE("/expenses/:id", h.DeleteExpense)

	// ---- Donations ----
	g.POST("/donations", h.CreateDonation)
	g.GET("/donations", h.ListDonations)
	g.GET("/donations/total", h.DonationsTotal)
	g.GET("/donations/:id", h.GetDonation)
	g.PUT("/donations/:id", h.UpdateDonation)
	g.PATCH("/donations/:id", h.UpdateDonation)
	g.DELETE("/donations/:id", h.DeleteDonation)

	// ---- Member donations (ticketless gifts) ----
	g.POST("/member-donations", h.CreateMemberDonation)
	g.GET("/member-donations", h.ListMemberDonations)
	g.GET("/member-donations/:id", h.GetMemberDonation)
	g.PUT("/member-donations/:id", h.UpdateMemberDonation)
	g.PATCH("/member-donations/:id", h.UpdateMemberDonation)
	g.DELETE("/member-donations/:id", h.DeleteMemberDonation)
}
