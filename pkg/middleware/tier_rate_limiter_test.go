package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, trl *TierRateLimiter, userID int, tier string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/keys", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID > 0 {
		c.Set("user_id", userID)
		c.Set("user_tier", tier)
	}

	handler := trl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestTierRateLimiter_BurstPerTier(t *testing.T) {
	tests := []struct {
		tier  string
		burst int
	}{
		{"free", 10},
		{"pro", 50},
		{"enterprise", 200},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			trl := NewTierRateLimiter()

			for i := 0; i < tt.burst; i++ {
				code := performRequest(t, trl, 1, tt.tier)
				require.Equal(t, http.StatusOK, code, "request %d should pass", i)
			}

			// Burst exhausted
			code := performRequest(t, trl, 1, tt.tier)
			assert.Equal(t, http.StatusTooManyRequests, code)
		})
	}
}

func TestTierRateLimiter_UnknownTierFallsBackToFree(t *testing.T) {
	trl := NewTierRateLimiter()

	free, ok := trl.GetTierLimits("free")
	require.True(t, ok)

	for i := 0; i < free.Burst; i++ {
		code := performRequest(t, trl, 2, "platinum")
		require.Equal(t, http.StatusOK, code)
	}

	code := performRequest(t, trl, 2, "platinum")
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestTierRateLimiter_UsersAreIndependent(t *testing.T) {
	trl := NewTierRateLimiter()

	free, ok := trl.GetTierLimits("free")
	require.True(t, ok)

	for i := 0; i < free.Burst; i++ {
		performRequest(t, trl, 3, "free")
	}
	require.Equal(t, http.StatusTooManyRequests, performRequest(t, trl, 3, "free"))

	// A different user still has a full bucket
	assert.Equal(t, http.StatusOK, performRequest(t, trl, 4, "free"))
}

func TestTierRateLimiter_UnauthenticatedUsesIPLimits(t *testing.T) {
	trl := NewTierRateLimiter()

	for i := 0; i < trl.defaultLimits.Burst; i++ {
		code := performRequest(t, trl, 0, "")
		require.Equal(t, http.StatusOK, code)
	}

	code := performRequest(t, trl, 0, "")
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(60, 3)

	e := echo.New()
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do())
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
}
