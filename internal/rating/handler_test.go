// AngelaMos | 2026
// handler_test.go

package rating

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_StageAndSubmit(t *testing.T) {
	svc, _ := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, "/orders/d1/rating", `{"stars":9}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, "/orders/d1/rating", `nope`).Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodPut, "/orders/zz/rating", `{"stars":2}`).Code)

	rec := do(http.MethodPut, "/orders/p1/rating", `{"stars":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_DELIVERED")

	require.Equal(t, http.StatusOK, do(http.MethodPut, "/orders/d1/rating", `{"stars":4}`).Code)

	rec = do(http.MethodGet, "/orders/d1/rating", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pending struct {
		Data RatingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	assert.Equal(t, 4, pending.Data.Stars)

	rec = do(http.MethodPost, "/orders/d1/rating", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var submitted struct {
		Data SubmitResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	assert.True(t, submitted.Data.Changed)
	assert.Equal(t, 4, submitted.Data.Rating)

	rec = do(http.MethodPost, "/orders/d1/rating", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	assert.False(t, submitted.Data.Changed)
}
