package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return JWTMiddlewareWithBlacklist(secret, nil, nil)
}

// JWTMiddlewareWithBlacklist creates a JWT authentication middleware with
// blacklist support. When db is non-nil the user account is also checked
// to still exist, so tokens for deleted accounts stop working immediately.
func JWTMiddlewareWithBlacklist(secret string, blacklist *auth.TokenBlacklist, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			token := parts[1]

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			claims, err := auth.ValidateJWTWithBlacklist(ctx, token, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: err.Error(),
				})
			}

			if db != nil {
				if _, err := db.User.Get(ctx, claims.UserID); err != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "user_not_found",
						Message: "User account not found",
					})
				}
			}

			// Store token in context for potential logout
			c.Set("token", token)

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_tier", claims.Tier)

			return next(c)
		}
	}
}
