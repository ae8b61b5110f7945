// AngelaMos | 2026
// handler_test.go

package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cskit/internal/config"
	"github.com/carterperez-dev/cskit/internal/middleware"
)

func TestHandler_Checkout(t *testing.T) {
	f := newFixture(t, config.LifecycleConfig{
		PreparingAfter:      time.Hour,
		OutForDeliveryAfter: time.Hour,
		DeliveredAfter:      time.Hour,
	})
	r := chi.NewRouter()
	NewHandler(f.engine).RegisterRoutes(r)

	withIdentity := func(req *http.Request) *http.Request {
		return req.WithContext(middleware.WithIdentity(
			req.Context(),
			&middleware.Identity{Email: "buyer@x.com", Role: "consumer"},
		))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodPost, "/checkout", nil)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_CART")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/tracking", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	f.fillCart(t, 1, 6)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodPost, "/checkout", nil)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data CheckoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.Data.Orders, 2)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data []Order `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, 2, listed.Meta.Total)
	assert.Equal(t, "Wooden Planks", listed.Data[1].ProductName)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/tracking", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var tracked struct {
		Data Tracking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracked))
	assert.Equal(t, created.Data.Orders[1].ID, tracked.Data.Order.ID)
}
