package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"assogest/internal/config"
)

func rateLimitCtx(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/tickets")
	return c
}

func TestRateKeyUsesAuthenticatedUser(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user_route"}
	c := rateLimitCtx(t)
	c.Set("user_id", "U0001")

	key := rateKey(cfg, c)
	assert.Contains(t, key, ":user:U0001:")
	assert.Contains(t, key, "route:GET /v1/tickets")
}

func TestRateKeyFallsBackToAnon(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user_route"}
	key := rateKey(cfg, rateLimitCtx(t))
	assert.Contains(t, key, ":user:anon:")
}

func TestRateKeyIPRouteStrategyIgnoresUser(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}
	c := rateLimitCtx(t)
	c.Set("user_id", "U0001")

	key := rateKey(cfg, c)
	assert.NotContains(t, key, "U0001")
}
