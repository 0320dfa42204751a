package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// TierLimits defines rate limits for a plan tier
type TierLimits struct {
	RequestsPerMinute int
	Burst             int
}

// TierRateLimiter rate-limits authenticated users by their plan tier and
// everyone else by IP
type TierRateLimiter struct {
	userLimiters map[int]*rate.Limiter
	ipLimiters   map[string]*rate.Limiter
	mu           sync.RWMutex

	tierLimits    map[string]TierLimits
	defaultLimits TierLimits
}

// NewTierRateLimiter creates a new tier-based rate limiter
func NewTierRateLimiter() *TierRateLimiter {
	trl := &TierRateLimiter{
		userLimiters: make(map[int]*rate.Limiter),
		ipLimiters:   make(map[string]*rate.Limiter),
		tierLimits: map[string]TierLimits{
			"free": {
				RequestsPerMinute: 60,
				Burst:             10,
			},
			"pro": {
				RequestsPerMinute: 300,
				Burst:             50,
			},
			"enterprise": {
				RequestsPerMinute: 1200,
				Burst:             200,
			},
		},
		defaultLimits: TierLimits{
			RequestsPerMinute: 30,
			Burst:             5,
		},
	}

	go trl.cleanupLimiters()

	return trl
}

func (trl *TierRateLimiter) getUserLimiter(userID int, tier string) *rate.Limiter {
	trl.mu.Lock()
	defer trl.mu.Unlock()

	if limiter, exists := trl.userLimiters[userID]; exists {
		return limiter
	}

	limits, exists := trl.tierLimits[tier]
	if !exists {
		limits = trl.tierLimits["free"]
	}

	limiter := rate.NewLimiter(rate.Limit(float64(limits.RequestsPerMinute)/60.0), limits.Burst)
	trl.userLimiters[userID] = limiter

	return limiter
}

func (trl *TierRateLimiter) getIPLimiter(ip string) *rate.Limiter {
	trl.mu.Lock()
	defer trl.mu.Unlock()

	if limiter, exists := trl.ipLimiters[ip]; exists {
		return limiter
	}

	rps := float64(trl.defaultLimits.RequestsPerMinute) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), trl.defaultLimits.Burst)
	trl.ipLimiters[ip] = limiter

	return limiter
}

func (trl *TierRateLimiter) cleanupLimiters() {
	for {
		time.Sleep(5 * time.Minute)

		trl.mu.Lock()
		for userID, limiter := range trl.userLimiters {
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(trl.userLimiters, userID)
			}
		}
		for ip, limiter := range trl.ipLimiters {
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(trl.ipLimiters, ip)
			}
		}
		trl.mu.Unlock()
	}
}

// Middleware creates an Echo middleware for tier-based rate limiting
func (trl *TierRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var limiter *rate.Limiter

			userID, hasUserID := c.Get("user_id").(int)
			tier, hasTier := c.Get("user_tier").(string)

			if hasUserID && hasTier {
				limiter = trl.getUserLimiter(userID, tier)
			} else {
				ip := c.RealIP()
				if ip == "" {
					ip = c.Request().RemoteAddr
				}
				limiter = trl.getIPLimiter(ip)
			}

			if !limiter.Allow() {
				tierInfo := "unauthenticated"
				if hasTier {
					tierInfo = tier
				}

				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   "rate_limit_exceeded",
					"message": "Rate limit exceeded for " + tierInfo + " tier. Please upgrade for higher limits or try again later.",
					"tier":    tierInfo,
				})
			}

			return next(c)
		}
	}
}

// GetTierLimits returns the rate limits for a specific tier
func (trl *TierRateLimiter) GetTierLimits(tier string) (TierLimits, bool) {
	trl.mu.RLock()
	defer trl.mu.RUnlock()

	limits, exists := trl.tierLimits[tier]
	return limits, exists
}
