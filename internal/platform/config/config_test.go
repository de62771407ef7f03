package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shareit-backend/internal/platform/db"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadServer(t *testing.T) {
	p := writeFile(t, `
mode: dev
timezone: UTC
database:
  driver: sqlite
  dsn: ":memory:"
certificate:
  cert: server.crt
  key: server.key
`)
	cfg, err := LoadServer(p)
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Mode != ModeDev || cfg.Addr != ":9090" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.DB.Driver != db.DriverSQLite || cfg.DB.DSN != ":memory:" {
		t.Errorf("unexpected database config %+v", cfg.DB)
	}
	if !cfg.TLSEnabled() {
		t.Error("expected TLS to be enabled")
	}
}

func TestLoadServerRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"mode":     "mode: staging\n",
		"timezone": "timezone: Mars/Olympus\n",
		"yaml":     "mode: [dev\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadServer(writeFile(t, body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := LoadServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestLoadGateway(t *testing.T) {
	cfg, err := LoadGateway(writeFile(t, "server_url: http://server:9090/\ntimeout: 3s\n"))
	if err != nil {
		t.Fatalf("LoadGateway: %v", err)
	}
	if cfg.ServerURL != "http://server:9090" || cfg.Timeout != 3*time.Second || cfg.Addr != ":8080" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	if got := ResolvePath("", "def.yaml"); got != "def.yaml" {
		t.Errorf("default: got %q", got)
	}
	t.Setenv(EnvConfigPath, "env.yaml")
	if got := ResolvePath("", "def.yaml"); got != "env.yaml" {
		t.Errorf("env: got %q", got)
	}
	if got := ResolvePath("flag.yaml", "def.yaml"); got != "flag.yaml" {
		t.Errorf("flag: got %q", got)
	}
}
