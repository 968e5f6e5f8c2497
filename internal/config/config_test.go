package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "pastebutton.yaml", `
log_level: debug
button:
  label: Paste screenshot
  background_color: "#222222"
  errors: raise
server:
  allowed_origin: "http://localhost:3000"
  max_value_bytes: 1048576
session:
  backend: redis
  id: notebook-1
  ttl: 30m
  redis:
    addr: redis:6379
    db: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Paste screenshot", cfg.Button.Label)
	assert.Equal(t, "#222222", cfg.Button.BackgroundColor)
	assert.Equal(t, domain.DefaultTextColor, cfg.Button.TextColor, "unset fields keep defaults")
	assert.Equal(t, domain.ErrorsRaise, cfg.Button.Errors)
	assert.Equal(t, "http://localhost:3000", cfg.Server.AllowedOrigin)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxValueBytes)
	assert.Equal(t, ":8501", cfg.Server.Addr, "unset fields keep defaults")
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "redis:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
	assert.Equal(t, "pastebutton:session:", cfg.Session.Redis.Prefix)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "pastebutton.json", `{"button": {"key": "shot"}, "server": {"addr": ":9000"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shot", cfg.Button.Key)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.True(t, cfg.Server.Metrics)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(write(t, "bad.yaml", "button: [unterminated"))
	assert.Error(t, err)

	_, err = Load(write(t, "backend.yaml", "session:\n  backend: etcd\n"))
	assert.ErrorContains(t, err, "session backend")

	_, err = Load(write(t, "mode.yaml", "button:\n  errors: loud\n"))
	assert.ErrorContains(t, err, "errors mode")
}

func TestButton_Style(t *testing.T) {
	style := Default().Button.Style()
	assert.Equal(t, domain.DefaultKey, style.Key)
	assert.Equal(t, domain.DefaultBackgroundColor, style.BackgroundColor)
	assert.False(t, style.HasImage)
}
