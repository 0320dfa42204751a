package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/chat"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// ChatHandler handles docs assistant requests
type ChatHandler struct {
	service   *chat.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service *chat.Service, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// Chat godoc
// @Summary Ask the docs assistant a question
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatRequest true "Question"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	if _, ok := c.Get("user_id").(int); !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	resp, err := h.service.Answer(ctx, req.Message)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordChatMessage(resp.Intent)
	}

	return c.JSON(http.StatusOK, resp)
}
