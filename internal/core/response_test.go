// AngelaMos | 2026
// response_test.go

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestList_IncludesTotal(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []int{1, 2}, 2)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestJSONError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      NotFoundError("order"),
			wantCode: http.StatusNotFound,
			wantBody: "NOT_FOUND",
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("checkout: %w", ConflictError("NOT_DELIVERED", "nope")),
			wantCode: http.StatusConflict,
			wantBody: "NOT_DELIVERED",
		},
		{
			name:     "no identity",
			err:      NoIdentityError(),
			wantCode: http.StatusUnauthorized,
			wantBody: "NO_IDENTITY",
		},
		{
			name:     "plain error hides detail",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
			wantBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSONError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantBody, resp.Error.Code)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestAppError_Unwraps(t *testing.T) {
	err := fmt.Errorf("promote: %w", NotFoundError("user"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsAppError(err))
	assert.False(t, IsAppError(ErrNotFound))
}

func TestFormatValidationError(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	assert.Equal(t, "email is required", FormatValidationError(v.Struct(req{})))
	assert.Equal(t, "email must be a valid email", FormatValidationError(v.Struct(req{Email: "x"})))
	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}

func TestStartSpan_NoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test")
	defer span.End()

	AddSpanEvent(ctx, "event")
	SetSpanError(ctx, errors.New("x"))
	assert.Empty(t, TraceIDFromContext(ctx))
}
