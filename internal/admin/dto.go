// AngelaMos | 2026
// dto.go

package admin

import (
	"github.com/carterperez-dev/cskit/internal/order"
	"github.com/carterperez-dev/cskit/internal/user"
)

type Stats struct {
	TotalUsers     int                  `json:"totalUsers"`
	TotalOrders    int                  `json:"totalOrders"`
	TotalConsumers int                  `json:"totalConsumers"`
	TotalLogins    int                  `json:"totalLogins"`
	AverageRating  float64              `json:"averageRating"`
	OrdersByStatus map[order.Status]int `json:"ordersByStatus"`
}

type PromoteResponse struct {
	User    user.UserResponse `json:"user"`
	Changed bool              `json:"changed"`
}

type SystemStatsResponse struct {
	Store     StoreStatus     `json:"store"`
	Lifecycle LifecycleStatus `json:"lifecycle"`
	Runtime   RuntimeStats    `json:"runtime"`
}

type StoreStatus struct {
	Backend string          `json:"backend"`
	Healthy bool            `json:"healthy"`
	SQL     *DBPoolStats    `json:"sql,omitempty"`
	Redis   *RedisPoolStats `json:"redis,omitempty"`
}

type LifecycleStatus struct {
	PendingSteps int `json:"pending_steps"`
}

type DBPoolStats struct {
	MaxOpenConnections int    `json:"max_open_connections"`
	OpenConnections    int    `json:"open_connections"`
	InUse              int    `json:"in_use"`
	Idle               int    `json:"idle"`
	WaitCount          int64  `json:"wait_count"`
	WaitDuration       string `json:"wait_duration"`
	MaxIdleClosed      int64  `json:"max_idle_closed"`
	MaxIdleTimeClosed  int64  `json:"max_idle_time_closed"`
	MaxLifetimeClosed  int64  `json:"max_lifetime_closed"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
