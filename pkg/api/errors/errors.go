package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a forbidden error with a caller-supplied code
func ForbiddenError(c echo.Context, code, message string) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a conflict error. The message is safe to expose
// (e.g. "User already exists").
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}

// BadGatewayError indicates an upstream dependency failed
func BadGatewayError(c echo.Context, err error) error {
	log.Printf("[UPSTREAM ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "upstream_error",
		Message: "An upstream service failed. Please try again later.",
	})
}
