package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

const (
	statusError            = "Error"
	statusValidationError  = "ValidationError"
	statusApplicationError = "ApplicationError"
)

// errorResponse is the canonical error envelope for all API errors. Errors is
// only present on validation failures.
type errorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as a 400 with every field violation itemized.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally and answers with a generic 500,
//     leaking no detail to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from the router, auth rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Status: statusError, Message: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Status:  statusValidationError,
			Message: "One or more validation errors occurred.",
			Errors:  ve.Errors,
		}
	}

	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		return http.StatusNotFound, errorResponse{
			Status:  statusError,
			Message: fmt.Sprintf("%s (%v) was not found.", nfe.Entity, nfe.Key),
		}
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, errorResponse{Status: statusApplicationError, Message: "Username already exists"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Status: statusApplicationError, Message: "User not found"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Status: statusError, Message: "Invalid username or password"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Status:  statusError,
		Message: "An error occurred while processing your request.",
	}
}
