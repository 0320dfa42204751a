package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/user"
	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	"github.com/snapjobs/snapjobs-back/pkg/models"
	"github.com/snapjobs/snapjobs-back/pkg/oauth"
)

// AuthHandler handles registration, login and the Google OAuth flow
type AuthHandler struct {
	db              *ent.Client
	oauth           *oauth.Service
	blacklist       *auth.TokenBlacklist
	metrics         *metrics.Metrics
	jwtSecret       string
	expirationHours int
	frontendURL     string
	validator       *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, oauthSvc *oauth.Service, blacklist *auth.TokenBlacklist, m *metrics.Metrics, jwtSecret string, expirationHours int, frontendURL string) *AuthHandler {
	return &AuthHandler{
		db:              db,
		oauth:           oauthSvc,
		blacklist:       blacklist,
		metrics:         m,
		jwtSecret:       jwtSecret,
		expirationHours: expirationHours,
		frontendURL:     frontendURL,
		validator:       validator.New(),
	}
}

func userResponse(u *ent.User) models.UserResponse {
	return models.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PlanTier:    string(u.PlanTier),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	u, err := h.db.User.Create().
		SetEmail(req.Email).
		SetName(req.Name).
		SetPasswordHash(hash).
		SetPlanTier(user.PlanTierFree).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return apierrors.ConflictError(c, "An account with this email already exists.")
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordUserRegistered()
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.PlanTier), h.jwtSecret, h.expirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  userResponse(u),
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(req.Email)).
		Only(ctx)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		if ent.IsNotFound(err) {
			return apierrors.UnauthorizedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	// OAuth-only accounts have no password hash
	if u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, req.Password) {
		if h.metrics != nil {
			h.metrics.RecordLoginAttempt(false)
		}
		return apierrors.UnauthorizedError(c)
	}

	u, err = u.Update().SetLastLoginAt(time.Now()).Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.PlanTier), h.jwtSecret, h.expirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  userResponse(u),
	})
}

// Me godoc
// @Summary Get the current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.UnauthorizedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, userResponse(u))
}

// Logout godoc
// @Summary Log out and revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return apierrors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.blacklist != nil {
		// Blacklist for the full token lifetime; expired entries fall out on their own
		if err := h.blacklist.Add(ctx, token, time.Duration(h.expirationHours)*time.Hour); err != nil {
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

// OAuthLogin godoc
// @Summary Start the Google OAuth flow
// @Tags auth
// @Param provider path string true "OAuth provider"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/auth/oauth/{provider} [get]
func (h *AuthHandler) OAuthLogin(c echo.Context) error {
	provider := oauth.Provider(c.Param("provider"))

	state, err := randomState()
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	authURL, err := h.oauth.GetAuthURL(provider, state)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_provider",
			Message: "Unsupported OAuth provider.",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, authURL)
}

// OAuthCallback godoc
// @Summary Complete the Google OAuth flow
// @Tags auth
// @Param provider path string true "OAuth provider"
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/auth/oauth/{provider}/callback [get]
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	provider := oauth.Provider(c.Param("provider"))
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	cookie, err := c.Cookie("oauth_state")
	if err != nil || cookie.Value == "" || cookie.Value != state {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_state",
			Message: "OAuth state mismatch. Please try logging in again.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	info, err := h.oauth.HandleCallback(ctx, provider, code)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "oauth_failed",
			Message: "OAuth login failed. Please try again.",
		})
	}

	u, created, err := h.oauth.FindOrCreateUser(ctx, info)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if created && h.metrics != nil {
		h.metrics.RecordUserRegistered()
	}

	u, err = u.Update().SetLastLoginAt(time.Now()).Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, string(u.PlanTier), h.jwtSecret, h.expirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s", h.frontendURL, url.QueryEscape(token))
	return c.Redirect(http.StatusFound, redirect)
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
