package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/snapjobs/snapjobs-back/ent"
	apierrors "github.com/snapjobs/snapjobs-back/pkg/api/errors"
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// UserHandler handles account management requests
type UserHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *ent.Client) *UserHandler {
	return &UserHandler{
		db:        db,
		validator: validator.New(),
	}
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "Password change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/user/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.UnauthorizedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	if u.PasswordHash == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "oauth_account",
			Message: "This account signs in with Google and has no password.",
		})
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_password",
			Message: "Current password is incorrect.",
		})
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if err := u.Update().SetPasswordHash(hash).Exec(ctx); err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password updated successfully",
	})
}
