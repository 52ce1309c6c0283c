package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"worldcat/internal/platform/worldcat"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "LOG_LEVEL", "WORLDCAT_BASE_URL", "WORLDCAT_RPS", "WORLDCAT_TIMEOUT", "CORS_ALLOWED_ORIGINS", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.Equal(t, worldcat.DefaultBaseURL, cfg.WorldCat.BaseURL)
	assert.Equal(t, 5, cfg.WorldCat.RPS)
	assert.Equal(t, 15*time.Second, cfg.WorldCat.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("WORLDCAT_RPS", "2")
	t.Setenv("WORLDCAT_TIMEOUT", "3s")
	t.Setenv("WORLDCAT_ACCESS_TOKEN", "tok")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, ,https://b.test")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2, cfg.WorldCat.RPS)
	assert.Equal(t, 3*time.Second, cfg.WorldCat.Timeout)
	assert.Equal(t, "tok", cfg.WorldCat.AccessToken)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORLDCAT_RPS", "-3")
	t.Setenv("WORLDCAT_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 5, cfg.WorldCat.RPS)
	assert.Equal(t, 15*time.Second, cfg.WorldCat.Timeout)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("WORLDCAT_USER_AGENT=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("WORLDCAT_USER_AGENT", "from_env")

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	if got := os.Getenv("WORLDCAT_USER_AGENT"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
