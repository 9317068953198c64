package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// Envelope is the uniform success response body. Data is always present,
// null when the requested resource does not exist.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform failure response body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, data any, msg string) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Message: msg})
}

func respondError(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Error: msg})
}

// respondMapped translates a domain error into the envelope with the status
// implied by its sentinel.
func respondMapped(c echo.Context, err error) error {
	return respondError(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAuthentication),
		errors.Is(err, domain.ErrNotConnected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
