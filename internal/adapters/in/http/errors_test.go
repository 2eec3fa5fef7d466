package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordError(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, respondError(ctx, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing value", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("weight"), http.StatusBadRequest},
		{"bad credentials", queries.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing entity", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"duplicate", errs.NewConflictError("trackingId", "TRK-1"), http.StatusConflict},
		{"repeated payment", order.ErrAlreadyPaid, http.StatusConflict},
		{"cabinet exhaustion", services.ErrCabinetExhausted, http.StatusConflict},
		{"foreign cabinet", commands.ErrOrderAccessDenied, http.StatusForbidden},
		{"uncovered balance", account.ErrInsufficientBalance, http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := recordError(t, tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}

func TestRespondError_UnknownErrorHidesDetails(t *testing.T) {
	status, body := recordError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Message)
}
