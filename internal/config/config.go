package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// OverrideEnv names the environment variable holding an explicit roster path.
const OverrideEnv = "EMPLOYEE_CSV_PATH"

type Config struct {
	Env       string       `yaml:"env"`       // Env is the current environment: local, dev, prod.
	Transport string       `yaml:"transport"` // Transport is either stdio or http.
	Debug     bool         `yaml:"debug"`     // Debug registers the debug_csv_path tool.
	Roster    RosterConfig `yaml:"roster"`
	HTTP      HTTPConfig   `yaml:"http"`
	Log       LogConfig    `yaml:"log"`
}

// RosterConfig holds where the roster file is looked up.
type RosterConfig struct {
	Path     string `yaml:"path"`      // Path is the explicit override, tried first.
	FileName string `yaml:"file_name"` // FileName is looked up in the working and install directories.
}

// HTTPConfig holds the listener used by the http transport.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level slog.Level `yaml:"level"`
}

// Load reads configuration from, in increasing priority: defaults, the YAML
// file named by CONFIG_PATH, and the environment (prefix EMPLOYEE_MCP_).
// A .env file in the working directory is applied to the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("transport", TransportStdio)
	v.SetDefault("debug", false)
	v.SetDefault("roster.path", "")
	v.SetDefault("roster.file_name", "employees.csv")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("EMPLOYEE_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("roster.path", OverrideEnv, "EMPLOYEE_MCP_ROSTER_PATH"); err != nil {
		return nil, fmt.Errorf("bind roster path: %w", err)
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := &Config{
		Env:       v.GetString("env"),
		Transport: strings.ToLower(v.GetString("transport")),
		Debug:     v.GetBool("debug"),
		Roster: RosterConfig{
			Path:     v.GetString("roster.path"),
			FileName: v.GetString("roster.file_name"),
		},
		HTTP: HTTPConfig{
			Addr: v.GetString("http.addr"),
		},
		Log: LogConfig{
			Level: level,
		},
	}

	switch cfg.Transport {
	case TransportStdio:
	case TransportHTTP:
		if cfg.HTTP.Addr == "" {
			return nil, errors.New("http transport requires http.addr")
		}
	default:
		return nil, fmt.Errorf("unknown transport %q: must be %s or %s", cfg.Transport, TransportStdio, TransportHTTP)
	}

	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config error: " + err.Error())
	}
	return cfg
}
