package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.EqualValues(t, 10<<20, cfg.Soil.MaxReportBytes)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krushi.yaml")
	content := `
server:
  port: "9090"
auth:
  tokenTTL: 2h
store:
  backend: redis
redis:
  addr: redis:6379
  db: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("KRUSHI_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", Mode: "release"},
			Auth:   AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour},
			Store:  StoreConfig{Backend: BackendMemory},
			Soil:   SoilConfig{MaxReportBytes: 1024},
		}
	}
	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"non-positive ttl", func(c *Config) { c.Auth.TokenTTL = 0 }},
		{"unknown mode", func(c *Config) { c.Server.Mode = "staging" }},
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"zero upload limit", func(c *Config) { c.Soil.MaxReportBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestLoadRejectsEnvBackend(t *testing.T) {
	t.Setenv("KRUSHI_STORE_BACKEND", "postgres")
	_, err := Load("")
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLConfig{Username: "root", Password: "secret", Host: "db:3306", DBName: "krushi"}.DSN()
	assert.Contains(t, dsn, "root:secret@tcp(db:3306)/krushi?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestMigrationsAreUniqueAndOrdered(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for _, m := range Migrations() {
		assert.False(t, seen[m.Name], m.Name)
		assert.Greater(t, m.Name, prev)
		seen[m.Name] = true
		prev = m.Name
	}
	assert.Contains(t, Migrations()[0].SQL, "kv_store")
}
