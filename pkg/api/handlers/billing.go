package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/billing"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	"github.com/snapjobs/snapjobs-back/pkg/models"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

// maxWebhookBody caps Stripe webhook payloads
const maxWebhookBody = 64 * 1024

// BillingHandler handles Stripe checkout, portal and webhook requests
type BillingHandler struct {
	service   *billing.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service *billing.Service, m *metrics.Metrics) *BillingHandler {
	return &BillingHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateCheckout godoc
// @Summary Start a Stripe checkout for a paid plan
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Plan selection"
// @Success 200 {object} billing.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	session, err := h.service.CreateCheckoutSession(ctx, userID, req.PlanCode)
	if err != nil {
		if errors.Is(err, plans.ErrInvalidPlanTier) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_plan",
				Message: "Unknown or non-purchasable plan.",
			})
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSubscriptionSold(req.PlanCode)
	}

	return c.JSON(http.StatusOK, session)
}

// CreatePortal godoc
// @Summary Open the Stripe customer portal
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} billing.PortalResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/billing/portal [post]
func (h *BillingHandler) CreatePortal(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	returnURL := c.QueryParam("returnUrl")
	session, err := h.service.CreateCustomerPortalSession(ctx, userID, returnURL)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// Webhook godoc
// @Summary Stripe webhook receiver
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/webhook/stripe [post]
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.service.HandleWebhook(ctx, payload, signature); err != nil {
		// Stripe retries on non-2xx; signature failures are not retryable
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: "Webhook processing failed.",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
