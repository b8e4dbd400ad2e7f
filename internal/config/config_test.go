package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.App.Port)
	}
	if cfg.LLM.MaxContextMessage != 6 {
		t.Fatalf("expected default max context 6, got %d", cfg.LLM.MaxContextMessage)
	}
	if cfg.RabbitMQ.SessionEventQueue != "session.event.audit" {
		t.Fatalf("unexpected default queue %q", cfg.RabbitMQ.SessionEventQueue)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[app]
port = 9090

[weather]
api_key = "from-file"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("WEATHERAPI_KEY", "from-env")
	t.Setenv("APP_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// env wins over file, file wins over defaults
	if cfg.App.Port != 7070 {
		t.Fatalf("env port should win, got %d", cfg.App.Port)
	}
	if cfg.Weather.APIKey != "from-env" {
		t.Fatalf("env weather key should win, got %q", cfg.Weather.APIKey)
	}
	if cfg.Auth.JWTExpireMinute != 120 {
		t.Fatalf("untouched fields keep defaults, got %d", cfg.Auth.JWTExpireMinute)
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.MySQL.User = "app"
	cfg.MySQL.Password = "pw"
	cfg.MySQL.Host = "db"
	cfg.MySQL.Port = 3307
	cfg.MySQL.DB = "consult"
	cfg.MySQL.Params = "parseTime=true"

	want := "app:pw@tcp(db:3307)/consult?parseTime=true"
	if got := cfg.MySQLDSN(); got != want {
		t.Fatalf("MySQLDSN() = %q, want %q", got, want)
	}
}

func TestHTTPAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 8081
	if got := cfg.HTTPAddr(); got != "127.0.0.1:8081" {
		t.Fatalf("HTTPAddr() = %q", got)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")
	if got := getEnvAsInt("APP_PORT", 8080); got != 8080 {
		t.Fatalf("garbage env value should fall back, got %d", got)
	}
}
