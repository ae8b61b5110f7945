// AngelaMos | 2026
// config.go

package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Redis     RedisConfig     `koanf:"redis"`
	Roles     RolesConfig     `koanf:"roles"`
	Lifecycle LifecycleConfig `koanf:"lifecycle"`
	Events    EventsConfig    `koanf:"events"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StoreConfig selects the key/value backend that replaces browser storage.
// Backend is one of memory, sqlite, postgres or redis. DSN is the sqlite
// file path or the postgres URL; the redis backend uses RedisConfig.
type StoreConfig struct {
	Backend         string        `koanf:"backend"`
	DSN             string        `koanf:"dsn"`
	KeyPrefix       string        `koanf:"key_prefix"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

type RolesConfig struct {
	AdminEmail   string `koanf:"admin_email"`
	SellerDomain string `koanf:"seller_domain"`
}

type LifecycleConfig struct {
	PreparingAfter      time.Duration `koanf:"preparing_after"`
	OutForDeliveryAfter time.Duration `koanf:"out_for_delivery_after"`
	DeliveredAfter      time.Duration `koanf:"delivered_after"`
	DeliveryScope       string        `koanf:"delivery_scope"`
}

type EventsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	AMQPURL  string `koanf:"amqp_url"`
	Exchange string `koanf:"exchange"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

const (
	ScopeBatch = "batch"
	ScopeAll   = "all"
)

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		cfg, loadErr = load(configPath)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

// LoadFresh builds a Config without touching the process-wide instance.
func LoadFresh(configPath string) (*Config, error) {
	return load(configPath)
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "CSkit Marketplace",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"store.backend":            BackendMemory,
		"store.dsn":                "cskit.db",
		"store.key_prefix":         "cskit:",
		"store.max_open_conns":     10,
		"store.max_idle_conns":     5,
		"store.conn_max_lifetime":  "1h",
		"store.conn_max_idle_time": "30m",

		"redis.pool_size":      10,
		"redis.min_idle_conns": 2,

		"roles.admin_email":   "chethanshetty1117@gmail.com",
		"roles.seller_domain": "@seller.cskit.com",

		"lifecycle.preparing_after":        "2s",
		"lifecycle.out_for_delivery_after": "4s",
		"lifecycle.delivered_after":        "6s",
		"lifecycle.delivery_scope":         ScopeBatch,

		"events.enabled":  false,
		"events.exchange": "order.exchange",

		"rate_limit.requests": 100,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    20,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "cskit",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"STORE_BACKEND":               "store.backend",
	"STORE_DSN":                   "store.dsn",
	"DATABASE_URL":                "store.dsn",
	"STORE_KEY_PREFIX":            "store.key_prefix",
	"REDIS_URL":                   "redis.url",
	"ADMIN_EMAIL":                 "roles.admin_email",
	"SELLER_DOMAIN":               "roles.seller_domain",
	"LIFECYCLE_DELIVERY_SCOPE":    "lifecycle.delivery_scope",
	"EVENTS_ENABLED":              "events.enabled",
	"RABBITMQ_URL":                "events.amqp_url",
	"EVENTS_EXCHANGE":             "events.exchange",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"RATE_LIMIT_REQUESTS":         "rate_limit.requests",
	"RATE_LIMIT_WINDOW":           "rate_limit.window",
	"RATE_LIMIT_BURST":            "rate_limit.burst",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite, BackendPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s backend", c.Store.Backend)
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Roles.AdminEmail == "" {
		return fmt.Errorf("roles.admin_email is required")
	}

	if !strings.HasPrefix(c.Roles.SellerDomain, "@") {
		return fmt.Errorf("roles.seller_domain must start with '@'")
	}

	l := c.Lifecycle
	if l.PreparingAfter <= 0 ||
		l.OutForDeliveryAfter <= l.PreparingAfter ||
		l.DeliveredAfter <= l.OutForDeliveryAfter {
		return fmt.Errorf("lifecycle delays must be positive and strictly increasing")
	}

	if l.DeliveryScope != ScopeBatch && l.DeliveryScope != ScopeAll {
		return fmt.Errorf("lifecycle.delivery_scope must be %q or %q", ScopeBatch, ScopeAll)
	}

	if c.Events.Enabled && c.Events.AMQPURL == "" {
		return fmt.Errorf("RABBITMQ_URL is required when events are enabled")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
