package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"shareit-backend/internal/platform/db"
)

const (
	ModeDev     = "dev"
	ModeRelease = "release"

	// 設定ファイルのパスを上書きする環境変数
	EnvConfigPath = "SHAREIT_CONFIG"
)

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type ServerConfig struct {
	Version     string            `yaml:"version"`
	Mode        string            `yaml:"mode"`
	Addr        string            `yaml:"addr"`
	Timezone    string            `yaml:"timezone"`
	DB          db.DatabaseConfig `yaml:"database"`
	Certificate Certs             `yaml:"certificate"`
}

// TLSEnabled は証明書と鍵が両方指定されているときだけ true
func (c *ServerConfig) TLSEnabled() bool {
	return c.Certificate.Cert != "" && c.Certificate.Key != ""
}

func (c *ServerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

type GatewayConfig struct {
	Version   string        `yaml:"version"`
	Mode      string        `yaml:"mode"`
	Addr      string        `yaml:"addr"`
	ServerURL string        `yaml:"server_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ResolvePath: フラグ > 環境変数 > デフォルト の順で設定ファイルを決める
func ResolvePath(flagValue, def string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v
	}
	return def
}

func LoadServer(path string) (*ServerConfig, error) {
	cfg := ServerConfig{
		Mode: ModeRelease,
		Addr: ":9090",
		DB: db.DatabaseConfig{
			Driver: db.DriverMySQL,
			Host:   "localhost",
			Port:   3306,
		},
	}
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	if err := checkMode(cfg.Mode); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("timezone の値が不正です: %w", err)
	}
	return &cfg, nil
}

func LoadGateway(path string) (*GatewayConfig, error) {
	cfg := GatewayConfig{
		Mode:      ModeRelease,
		Addr:      ":8080",
		ServerURL: "http://localhost:9090",
		Timeout:   10 * time.Second,
	}
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	if err := checkMode(cfg.Mode); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.ServerURL) == "" {
		return nil, fmt.Errorf("server_url が設定されていません")
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return &cfg, nil
}

func load(path string, out any) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	if err := yaml.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	return nil
}

func checkMode(mode string) error {
	if mode != ModeDev && mode != ModeRelease {
		return fmt.Errorf("mode は dev か release を指定してください: %q", mode)
	}
	return nil
}
