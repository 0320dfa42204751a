package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/apikey"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// keyAction is the closed set of mutations the keys endpoint accepts.
type keyAction string

const (
	actionGenerate keyAction = "generate"
	actionReveal   keyAction = "reveal"
	actionToggle   keyAction = "toggle"
	actionRevoke   keyAction = "revoke"
)

// Plaintext is handed out exactly once; both paths that return it say so.
const (
	generateWarning = "Store this API key safely. It won't be shown again."
	revealWarning   = "⚠️ WARNING: This API key will only be shown ONCE. Copy it now and store it securely!"
)

// parseKeyAction maps the request string onto the closed action set
func parseKeyAction(s string) (keyAction, bool) {
	switch keyAction(s) {
	case actionGenerate, actionReveal, actionToggle, actionRevoke:
		return keyAction(s), true
	}
	return "", false
}

// APIKeyHandler handles API key lifecycle requests
type APIKeyHandler struct {
	service   *apikey.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(service *apikey.Service, m *metrics.Metrics) *APIKeyHandler {
	return &APIKeyHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// ListKeys godoc
// @Summary List API keys
// @Description Returns the caller's API keys, newest first, without secrets
// @Tags keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} apikey.KeySummary
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/keys [get]
func (h *APIKeyHandler) ListKeys(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	keys, err := h.service.List(ctx, userID)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"keys": keys,
	})
}

// MutateKey godoc
// @Summary Mutate API keys
// @Description Generates, reveals, toggles or revokes a key depending on action
// @Tags keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.KeyActionRequest true "Key action"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/keys [post]
func (h *APIKeyHandler) MutateKey(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.KeyActionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	action, ok := parseKeyAction(req.Action)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_action",
			Message: "Action must be one of: generate, reveal, toggle, revoke.",
		})
	}
	if action != actionGenerate && req.KeyID == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_key_id",
			Message: "keyId is required for this action.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	switch action {
	case actionGenerate:
		return h.generate(c, ctx, userID)
	case actionReveal:
		return h.reveal(c, ctx, userID, req.KeyID)
	case actionToggle:
		return h.toggle(c, ctx, userID, req.KeyID, req.Enable)
	default:
		return h.revoke(c, ctx, userID, req.KeyID)
	}
}

func (h *APIKeyHandler) generate(c echo.Context, ctx context.Context, userID int) error {
	tier, _ := c.Get("user_tier").(string)

	key, err := h.service.Generate(ctx, userID)
	if err != nil {
		var quotaErr *apikey.QuotaError
		switch {
		case errors.As(err, &quotaErr):
			if h.metrics != nil {
				h.metrics.RecordQuotaRejection(tier)
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error":   "quota_exceeded",
				"message": quotaErr.Error(),
				"limit":   quotaErr.Limit,
				"current": quotaErr.Current,
			})
		case errors.Is(err, apikey.ErrNotFound):
			return apierrors.NotFoundError(c, "user")
		default:
			return apierrors.InternalError(c, err)
		}
	}

	if h.metrics != nil {
		h.metrics.RecordKeyGenerated(tier)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"key":     key,
		"message": generateWarning,
	})
}

func (h *APIKeyHandler) reveal(c echo.Context, ctx context.Context, userID, keyID int) error {
	value, err := h.service.Reveal(ctx, userID, keyID)
	if err != nil {
		switch {
		case errors.Is(err, apikey.ErrNotFound):
			return apierrors.NotFoundError(c, "api key")
		case errors.Is(err, apikey.ErrAlreadyRevealed):
			return apierrors.ForbiddenError(c, "already_revealed",
				"This key has already been revealed. Generate a new key if you lost it.")
		default:
			return apierrors.InternalError(c, err)
		}
	}

	if h.metrics != nil {
		h.metrics.RecordKeyRevealed()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"key":     value,
		"message": revealWarning,
	})
}

func (h *APIKeyHandler) toggle(c echo.Context, ctx context.Context, userID, keyID int, enable *bool) error {
	active, err := h.service.Toggle(ctx, userID, keyID, enable)
	if err != nil {
		if errors.Is(err, apikey.ErrNotFound) {
			return apierrors.NotFoundError(c, "api key")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":       keyID,
		"isActive": active,
	})
}

func (h *APIKeyHandler) revoke(c echo.Context, ctx context.Context, userID, keyID int) error {
	if err := h.service.Revoke(ctx, userID, keyID); err != nil {
		if errors.Is(err, apikey.ErrNotFound) {
			return apierrors.NotFoundError(c, "api key")
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordKeyRevoked()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":      keyID,
		"revoked": true,
	})
}
