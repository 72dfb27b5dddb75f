// Package response builds the uniform JSON envelopes returned by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
)

// Success writes a success envelope carrying data plus the request id.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Created writes a 201 envelope with the assigned identity.
func Created(c echo.Context, id int) error {
	return Success(c, http.StatusCreated, map[string]int{"id": id})
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error envelope carrying the business error code plus the
// request id.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}
