package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// StatusOf maps domain errors to HTTP status codes. Unknown errors are internal errors.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the error body for status.
func NewErrorResponse(status int, detail string) model.ErrorResponse {
	return model.ErrorResponse{
		Error:     http.StatusText(status),
		Detail:    detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func respondError(c echo.Context, err error) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		req := c.Request()
		log.Error(msg.GetMessage("app.unhandled", req.Method, req.URL.Path, err), zap.Error(err))
	}
	return c.JSON(status, NewErrorResponse(status, err.Error()))
}

// bind decodes and validates the request body. Both failures are validation errors.
func bind(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		detail := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if message, ok := httpErr.Message.(string); ok {
				detail = message
			}
		}
		return model.NewError(model.ErrValidation, err, "%s", detail)
	}
	if err := c.Validate(dest); err != nil {
		return model.NewError(model.ErrValidation, err, "%s", err.Error())
	}
	return nil
}
