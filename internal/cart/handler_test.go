// AngelaMos | 2026
// handler_test.go

package cart

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

func TestHandler_CartFlow(t *testing.T) {
	svc, _ := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	require.Equal(t, http.StatusCreated, do(http.MethodPost, "/cart/items", `{"productId":1}`).Code)
	require.Equal(t, http.StatusCreated, do(http.MethodPost, "/cart/items", `{"productId":2}`).Code)
	require.Equal(t, http.StatusCreated, do(http.MethodPost, "/cart/items", `{"productId":1}`).Code)

	assert.Equal(t, http.StatusNotFound, do(http.MethodPost, "/cart/items", `{"productId":77}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/cart/items", `{}`).Code)

	rec := do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Count)
	assert.Equal(t, float64(710), resp.Data.Total)

	rec = do(http.MethodDelete, "/cart/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Count)

	assert.Equal(t, http.StatusBadRequest, do(http.MethodDelete, "/cart/items/x", "").Code)
	assert.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/cart", "").Code)

	rec = do(http.MethodGet, "/cart", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.Count)
}
