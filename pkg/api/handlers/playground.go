package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	"github.com/snapjobs/snapjobs-back/pkg/models"
	"github.com/snapjobs/snapjobs-back/pkg/sjm"
)

// PlaygroundHandler proxies docs-playground requests to the matching API
type PlaygroundHandler struct {
	client    *sjm.Client
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewPlaygroundHandler creates a new playground handler
func NewPlaygroundHandler(client *sjm.Client, m *metrics.Metrics) *PlaygroundHandler {
	return &PlaygroundHandler{
		client:    client,
		metrics:   m,
		validator: validator.New(),
	}
}

// Proxy godoc
// @Summary Run a playground request against the matching API
// @Tags playground
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PlaygroundRequest true "Request to forward"
// @Success 200 {object} sjm.ProxyResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/playground [post]
func (h *PlaygroundHandler) Proxy(c echo.Context) error {
	if _, ok := c.Get("user_id").(int); !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.PlaygroundRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := h.client.Do(ctx, req.Endpoint, req.Method, req.Params)
	if err != nil {
		if errors.Is(err, sjm.ErrInvalidEndpoint) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_endpoint",
				Message: "Endpoint must be a single path segment like 'match' or 'verify-skill'.",
			})
		}
		return apierrors.BadGatewayError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordUpstreamRequest(req.Endpoint, resp.Status, time.Since(start))
	}

	return c.JSON(http.StatusOK, resp)
}
