// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/cskit/internal/order"
)

func newTestRouter(t *testing.T, cfg HandlerConfig) chi.Router {
	t.Helper()

	svc, _ := newTestService(t, []order.Order{
		{ID: "a", Status: order.StatusDelivered, Rating: 5},
	})
	cfg.Service = svc

	r := chi.NewRouter()
	NewHandler(cfg).RegisterRoutes(r)
	return r
}

func TestHandler_StatsAndUsers(t *testing.T) {
	r := newTestRouter(t, HandlerConfig{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Data Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5.0, stats.Data.AverageRating)
	assert.Equal(t, 1, stats.Data.OrdersByStatus[order.StatusDelivered])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestHandler_Promote(t *testing.T) {
	r := newTestRouter(t, HandlerConfig{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/users/u1/promote", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			User struct {
				Role string `json:"role"`
			} `json:"user"`
			Changed bool `json:"changed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "seller", resp.Data.User.Role)
	assert.True(t, resp.Data.Changed)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/users/ghost/promote", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SystemStats(t *testing.T) {
	r := newTestRouter(t, HandlerConfig{
		Backend: "memory",
		StorePing: func(context.Context) error {
			return errors.New("down")
		},
		PendingSteps: func() int { return 3 },
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/system", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data SystemStatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "memory", resp.Data.Store.Backend)
	assert.False(t, resp.Data.Store.Healthy)
	assert.Nil(t, resp.Data.Store.SQL)
	assert.Equal(t, 3, resp.Data.Lifecycle.PendingSteps)
	assert.NotEmpty(t, resp.Data.Runtime.GoVersion)
}
