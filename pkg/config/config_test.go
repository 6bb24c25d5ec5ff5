package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore; Unsetenv makes the key absent for the test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "SERVER_PORT", "APP_ENV", "DB_DRIVER", "DB_PATH", "METRICS_PREFIX",
		"DEFAULT_USER_ID", "DB_MAX_OPEN_CONNS", "CONTACT_API_URL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./db/contacts.sqlite3", cfg.Database.Path)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, "contact", cfg.Metrics.Prefix)
	assert.Equal(t, "demo", cfg.User.DefaultID)
	assert.Equal(t, "http://localhost:4000/api", cfg.Client.BaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("DEFAULT_USER_ID", "alice")
	t.Setenv("METRICS_PREFIX", "cb")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "alice", cfg.User.DefaultID)
	assert.Equal(t, "cb", cfg.Metrics.Prefix)
	assert.Contains(t, cfg.Database.GetDSN(), "host=db.internal")
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/contacts.db")
	t.Setenv("DEFAULT_USER_ID", "demo")
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("CONTACT_API_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")
	t.Setenv("DEFAULT_USER_ID", "demo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestValidateRequiresUser(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: DriverSQLite, Path: "x.db"},
	}
	require.Error(t, cfg.Validate())
}
