// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/user"
)

type Handler struct {
	service      *Service
	backend      string
	dbStats      func() sql.DBStats
	redisStats   func() *redis.PoolStats
	storePing    func(ctx context.Context) error
	pendingSteps func() int
}

type HandlerConfig struct {
	Service      *Service
	Backend      string
	DBStats      func() sql.DBStats
	RedisStats   func() *redis.PoolStats
	StorePing    func(ctx context.Context) error
	PendingSteps func() int
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		service:      cfg.Service,
		backend:      cfg.Backend,
		dbStats:      cfg.DBStats,
		redisStats:   cfg.RedisStats,
		storePing:    cfg.StorePing,
		pendingSteps: cfg.PendingSteps,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", h.GetStats)
		r.Get("/users", h.ListUsers)
		r.Get("/orders", h.ListOrders)
		r.Post("/users/{userID}/promote", h.PromoteToSeller)
		r.Get("/system", h.GetSystemStats)
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Users(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, user.ToUserResponseList(users), len(users))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Orders(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, orders, len(orders))
}

func (h *Handler) PromoteToSeller(w http.ResponseWriter, r *http.Request) {
	u, changed, err := h.service.PromoteToSeller(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PromoteResponse{
		User:    user.ToUserResponse(u),
		Changed: changed,
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	healthy := true
	if h.storePing != nil {
		if err := h.storePing(r.Context()); err != nil {
			healthy = false
		}
	}

	pending := 0
	if h.pendingSteps != nil {
		pending = h.pendingSteps()
	}

	core.OK(w, SystemStatsResponse{
		Store: StoreStatus{
			Backend: h.backend,
			Healthy: healthy,
			SQL:     h.getDBStats(),
			Redis:   h.getRedisStats(),
		},
		Lifecycle: LifecycleStatus{PendingSteps: pending},
		Runtime:   runtimeStats(),
	})
}

func runtimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxIdleTimeClosed:  stats.MaxIdleTimeClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}
