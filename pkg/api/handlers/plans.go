package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

// PlansHandler serves the public plan catalog
type PlansHandler struct {
	service *plans.Service
}

// NewPlansHandler creates a new plans handler
func NewPlansHandler(service *plans.Service) *PlansHandler {
	return &PlansHandler{service: service}
}

// ListPlans godoc
// @Summary List subscription plans
// @Description Returns the pricing catalog, cheapest plan first
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/plans [get]
func (h *PlansHandler) ListPlans(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	catalog, err := h.service.ListCatalog(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"plans": catalog,
	})
}
