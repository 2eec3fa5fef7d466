package http

import (
	"errors"
	"net/http"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps core errors onto HTTP statuses. Input validation is a
// 400, missing entities a 404, duplicates, repeated payments, and
// cabinet-code exhaustion a 409,
// cross-cabinet access a 403, and an uncovered balance a 402.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, queries.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, order.ErrAlreadyPaid),
		errors.Is(err, services.ErrCabinetExhausted):
		// Cabinet exhaustion is retryable: a fresh registration attempt
		// draws new candidate codes.
		status = http.StatusConflict
	case errors.Is(err, commands.ErrOrderAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, account.ErrInsufficientBalance):
		status = http.StatusPaymentRequired
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
