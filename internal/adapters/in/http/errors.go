package http

import (
	"errors"
	"net/http"

	"supplytrace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application error kinds to HTTP status codes.
// Unrecognized errors become 500 without leaking internals.
func respondError(ctx echo.Context, err error) error {
	var (
		notFound          *errs.ObjectNotFoundError
		valueRequired     *errs.ValueIsRequiredError
		valueInvalid      *errs.ValueIsInvalidError
		valueOutOfRange   *errs.ValueIsOutOfRangeError
		forbidden         *errs.ForbiddenError
		invalidState      *errs.InvalidStateError
		conflict          *errs.ConflictError
		invalidCredential *errs.InvalidCredentialError
		insufficientStock *errs.InsufficientStockError
		timeout           *errs.TimeoutError
	)

	var code int
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &valueRequired), errors.As(err, &valueInvalid), errors.As(err, &valueOutOfRange):
		code = http.StatusBadRequest
	case errors.As(err, &forbidden):
		code = http.StatusForbidden
	case errors.As(err, &invalidCredential):
		code = http.StatusUnauthorized
	case errors.As(err, &invalidState), errors.As(err, &conflict):
		code = http.StatusConflict
	case errors.As(err, &insufficientStock):
		code = http.StatusUnprocessableEntity
	case errors.As(err, &timeout):
		code = http.StatusServiceUnavailable
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
