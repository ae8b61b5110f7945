// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFresh_Defaults(t *testing.T) {
	cfg, err := LoadFresh("")
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "chethanshetty1117@gmail.com", cfg.Roles.AdminEmail)
	assert.Equal(t, "@seller.cskit.com", cfg.Roles.SellerDomain)
	assert.Equal(t, 2*time.Second, cfg.Lifecycle.PreparingAfter)
	assert.Equal(t, 4*time.Second, cfg.Lifecycle.OutForDeliveryAfter)
	assert.Equal(t, 6*time.Second, cfg.Lifecycle.DeliveredAfter)
	assert.Equal(t, ScopeBatch, cfg.Lifecycle.DeliveryScope)
	assert.False(t, cfg.Events.Enabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFresh_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
store:
  backend: sqlite
  dsn: /tmp/cskit-test.db
lifecycle:
  delivery_scope: all
server:
  port: 9191
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := LoadFresh(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/cskit-test.db", cfg.Store.DSN)
	assert.Equal(t, ScopeAll, cfg.Lifecycle.DeliveryScope)
	assert.Equal(t, "0.0.0.0:9191", cfg.Server.Address())
}

func TestLoadFresh_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ADMIN_EMAIL", "boss@cskit.com")

	cfg, err := LoadFresh("")
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "boss@cskit.com", cfg.Roles.AdminEmail)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Store.Backend = "etcd" },
			wantErr: "unknown store backend",
		},
		{
			name:    "redis without url",
			mutate:  func(c *Config) { c.Store.Backend = BackendRedis; c.Redis.URL = "" },
			wantErr: "REDIS_URL is required",
		},
		{
			name:    "seller domain without at sign",
			mutate:  func(c *Config) { c.Roles.SellerDomain = "seller.cskit.com" },
			wantErr: "seller_domain",
		},
		{
			name: "lifecycle delays out of order",
			mutate: func(c *Config) {
				c.Lifecycle.OutForDeliveryAfter = c.Lifecycle.PreparingAfter
			},
			wantErr: "strictly increasing",
		},
		{
			name:    "bad delivery scope",
			mutate:  func(c *Config) { c.Lifecycle.DeliveryScope = "some" },
			wantErr: "delivery_scope",
		},
		{
			name:    "events without broker",
			mutate:  func(c *Config) { c.Events.Enabled = true; c.Events.AMQPURL = "" },
			wantErr: "RABBITMQ_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFresh("")
			require.NoError(t, err)

			tt.mutate(cfg)

			err = validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
