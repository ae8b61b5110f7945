// AngelaMos | 2026
// handler_test.go

package product

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

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc, _ := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListAndSearch(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(r, http.MethodGet, "/products?search=gra", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Product `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Gravel", resp.Data[0].Name)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestHandler_CRUD(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(r, http.MethodPost, "/products", `{"name":"Tiles","price":40,"description":"Floor tiles"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1700000000000`)

	rec = doRequest(r, http.MethodGet, "/products/1700000000000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(r, http.MethodPut, "/products/1700000000000", `{"name":"Blue Tiles","price":45}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blue Tiles")

	rec = doRequest(r, http.MethodPut, "/products/5555", `{"name":"Ghost","price":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(r, http.MethodDelete, "/products/1700000000000", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(r, http.MethodDelete, "/products/1700000000000", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(r, http.MethodGet, "/products/1700000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BadInput(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodGet, "/products/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, "/products", `{"price":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, "/products", `nope`).Code)
}
