package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090
shutdown_timeout = 5

[database]
host = "db"
port = 5433
user = "scheduler"
password = "secret"
dbname = "scheduling"

[redis]
enabled = true
host = "cache"
port = 6380
db = 2

[cache]
settings_ttl = 120

[logs]
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "scheduling"

[scheduling]
max_days_range = 31
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	// не указанные значения берутся по умолчанию
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "host=db port=5433 user=scheduler password=secret dbname=scheduling sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, 31, cfg.Scheduling.MaxDaysRange)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scheduling", cfg.Database.DBName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[server\nhttp_port = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad http port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "port too large", mutate: func(c *Config) { c.Database.Port = 70000 }},
		{name: "no database name", mutate: func(c *Config) { c.Database.DBName = " " }},
		{name: "bad redis port", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Port = -1 }},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.SettingsTTL = -5 }},
		{name: "unknown log level", mutate: func(c *Config) { c.Logs.Level = "verbose" }},
		{name: "relative metrics path", mutate: func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Path = "metrics" }},
		{name: "empty days range", mutate: func(c *Config) { c.Scheduling.MaxDaysRange = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Database.DBName = "scheduling"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_DisabledRedisIgnoresPort(t *testing.T) {
	cfg := Default()
	cfg.Database.DBName = "scheduling"
	cfg.Redis.Port = 0
	assert.NoError(t, cfg.Validate())
}
