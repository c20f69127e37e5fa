package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "DATABASE_DRIVER", "DATABASE_URL", "AUTO_MIGRATE", "JWT_SECRET",
	"TOKEN_TTL", "REQUIRE_AUTH", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, ":3000", c.Addr())
	assert.Equal(t, "postgres", c.DatabaseDriver)
	assert.True(t, c.AutoMigrate)
	assert.False(t, c.RequireAuth)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.True(t, c.UsesDevSecret())
}

func TestLoadFallsBackToDevSecret(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DevJWTSecret, c.JWTSecret)

	t.Setenv("JWT_SECRET", "")
	c, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DevJWTSecret, c.JWTSecret)
	assert.True(t, c.UsesDevSecret())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8081", c.Port)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.True(t, c.RequireAuth)
	assert.Equal(t, 15*time.Minute, c.TokenTTL)
	assert.False(t, c.UsesDevSecret())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nLOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("PORT")
		_ = os.Unsetenv("LOG_FORMAT")
	})

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "console", c.LogFormat)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	bad := c
	bad.DatabaseDriver = "mysql"
	assert.ErrorContains(t, bad.Validate(), "DATABASE_DRIVER")

	bad = c
	bad.TokenTTL = 0
	assert.ErrorContains(t, bad.Validate(), "TOKEN_TTL")

	bad = c
	bad.LogLevel = "loud"
	bad.LogFormat = "xml"
	err = bad.Validate()
	assert.ErrorContains(t, err, "LOG_LEVEL")
	assert.ErrorContains(t, err, "LOG_FORMAT")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TTL", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
