package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogify.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":    "http://127.0.0.1:8080/api",
		"request_timeout": "10s",
		"session_db_path": "/tmp/s.db",
		"log_level":       "debug",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "http://127.0.0.1:8080/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/tmp/s.db", cfg.SessionDBPath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "defaults", RequestTimeout: 42 * time.Second}
		parseJson(cfg, nil)

		assert.Equal(t, "defaults", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"log_level": "error"})
		cfg := &Config{APIBaseURL: "keep", RequestTimeout: time.Second}
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, "keep", cfg.APIBaseURL)
		assert.Equal(t, time.Second, cfg.RequestTimeout)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", "/nonexistent/blogify.json"}) })
	})
}
