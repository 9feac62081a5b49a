package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv clears AWR_* variables and moves into an empty directory for the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix+"_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	t.Chdir(t.TempDir())
}

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "default configuration with no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 1048576, cfg.Server.MaxHeaderBytes)

				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Contains(t, cfg.Database.DSN, "adventureworks.db")
				assert.Equal(t, 8, cfg.Database.MaxOpenConns)
				assert.True(t, cfg.Database.AutoMigrate)
				assert.False(t, cfg.Database.SeedDemoData)

				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "console", cfg.Logging.Output)

				assert.Equal(t, []string{"http://localhost:8080"}, cfg.Security.AllowedOrigins)
				assert.True(t, cfg.Security.RateLimit.Enabled)
				assert.Equal(t, 100.0, cfg.Security.RateLimit.RPS)
				assert.Equal(t, 50, cfg.Security.RateLimit.Burst)

				assert.Equal(t, "awreports", cfg.Telemetry.ServiceName)
				assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
				assert.Equal(t, "prometheus", cfg.Telemetry.MetricExporter)
			},
		},
		{
			name: "custom environment variables",
			env: map[string]string{
				"AWR_SERVER_PORT":              "9090",
				"AWR_SERVER_READ_TIMEOUT":      "30s",
				"AWR_DATABASE_DSN":             "file:/tmp/aw.db",
				"AWR_DATABASE_SEED_DEMO_DATA":  "true",
				"AWR_SECURITY_ALLOWED_ORIGINS": "http://example.com,https://example.com",
				"AWR_LOGGING_LEVEL":            "debug",
				"AWR_LOGGING_FORMAT":           "text",
				"AWR_TELEMETRY_TRACE_EXPORTER": "stdout",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "file:/tmp/aw.db", cfg.Database.DSN)
				assert.True(t, cfg.Database.SeedDemoData)
				assert.Equal(t, []string{"http://example.com", "https://example.com"}, cfg.Security.AllowedOrigins)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format, "format is forced to json")
				assert.Equal(t, "stdout", cfg.Telemetry.TraceExporter)
			},
		},
		{
			name: "yaml file overrides defaults",
			file: `
server:
  port: 7070
  request_timeout: 5s
database:
  dsn: "file:from-yaml.db"
  max_open_conns: 2
  max_idle_conns: 1
telemetry:
  environment: staging
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7070, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "file:from-yaml.db", cfg.Database.DSN)
				assert.Equal(t, 2, cfg.Database.MaxOpenConns)
				assert.Equal(t, "staging", cfg.Telemetry.Environment)
				// keys absent from the file keep their defaults
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "sqlite", cfg.Database.Driver)
			},
		},
		{
			name: "environment wins over yaml file",
			file: "server:\n  port: 7070\n",
			env:  map[string]string{"AWR_SERVER_PORT": "6060"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 6060, cfg.Server.Port)
			},
		},
		{
			name:    "invalid port number",
			env:     map[string]string{"AWR_SERVER_PORT": "99999"},
			wantErr: "invalid server port",
		},
		{
			name:    "unparseable duration",
			env:     map[string]string{"AWR_SERVER_READ_TIMEOUT": "soon"},
			wantErr: "failed to load config from env",
		},
		{
			name:    "idle connections above open connections",
			env:     map[string]string{"AWR_DATABASE_MAX_OPEN_CONNS": "2", "AWR_DATABASE_MAX_IDLE_CONNS": "3"},
			wantErr: "max idle conns",
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"AWR_LOGGING_LEVEL": "verbose"},
			wantErr: "invalid log level",
		},
		{
			name:    "unknown metric exporter",
			env:     map[string]string{"AWR_TELEMETRY_METRIC_EXPORTER": "statsd"},
			wantErr: "invalid metric exporter",
		},
		{
			name:    "malformed yaml",
			file:    "server: [",
			wantErr: "failed to load config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			if tt.file != "" {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))
				t.Setenv(ConfigFileEnv, path)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestLoad_ConfigFileInWorkingDirectory(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, os.WriteFile("config.yaml", []byte("logging:\n  level: warn\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.validate())
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: 8080}.Addr())
	assert.Equal(t, "127.0.0.1:9000", ServerConfig{Host: "127.0.0.1", Port: 9000}.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero request timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "request timeout"},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, "dsn"},
		{"empty driver", func(c *Config) { c.Database.Driver = "" }, "driver"},
		{"file output without path", func(c *Config) { c.Logging.Output = "file"; c.Logging.FilePath = "" }, "log file path"},
		{"cors without origins", func(c *Config) { c.Security.AllowedOrigins = nil }, "allowed origin"},
		{"rate limit without burst", func(c *Config) { c.Security.RateLimit.Burst = 0 }, "rate limit"},
		{"sample ratio above one", func(c *Config) { c.Telemetry.SampleRatio = 1.5 }, "sample ratio"},
		{"unknown trace exporter", func(c *Config) { c.Telemetry.TraceExporter = "jaeger" }, "trace exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
