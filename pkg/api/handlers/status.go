package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/status"
)

// historyDays is the public status page window
const historyDays = 90

// StatusHandler serves historical availability data
type StatusHandler struct {
	service *status.Service
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service *status.Service) *StatusHandler {
	return &StatusHandler{service: service}
}

// Historical godoc
// @Summary Historical API availability
// @Description Returns up to 90 days of daily uptime, newest first
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/historical [get]
func (h *StatusHandler) Historical(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	history, err := h.service.History(ctx, historyDays)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"days": history,
	})
}
