package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "LOGIN_URL", "ITEM_PER_PAGE", "SESSION_COOKIE_NAME", "SESSION_TTL_HOURS", "SESSION_RETENTION_HOURS", "SESSION_PURGE_MINUTES"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "/login", config.App.LoginURL)
	assert.Equal(t, DefaultItemPerPage, config.App.ItemPerPage)
	assert.Equal(t, "session_token", config.Session.CookieName)
	assert.Equal(t, 24*time.Hour, config.Session.TTL())
	assert.Equal(t, 7*24*time.Hour, config.Session.Retention())
	assert.Equal(t, time.Hour, config.Session.PurgeInterval())
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	env := "PORT=9000\nITEM_PER_PAGE=5\nDB_NAME=catalog\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Chdir(dir)

	t.Setenv("ITEM_PER_PAGE", "20")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", config.App.Port)
	assert.Equal(t, "catalog", config.Database.Name)
	assert.Equal(t, 20, config.App.ItemPerPage)
}

func TestLoadConfig_InvalidPageSizeFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ITEM_PER_PAGE", "0")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultItemPerPage, config.App.ItemPerPage)
}
