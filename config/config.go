package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Dashboard specifics
	Storage   StorageConfig
	Dashboard DashboardConfig
	TUI       TUIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// StorageConfig selects the key-value backend. Path is used by the file and
// sqlite drivers, DSN by mysql.
type StorageConfig struct {
	Driver string
	Path   string
	DSN    string
}

type DashboardConfig struct {
	NotificationDuration time.Duration
}

type TUIConfig struct {
	LogFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-dashboard/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/task-dashboard/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Dashboard specifics
	cfg.Storage.Driver = v.GetString("storage.driver")
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.DSN = v.GetString("storage.dsn")
	cfg.Dashboard.NotificationDuration = v.GetDuration("dashboard.notification_duration")
	cfg.TUI.LogFile = v.GetString("tui.log_file")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_min", 120)

	// Storage defaults to a JSON file under the XDG data dir (resolved by kvstore)
	v.SetDefault("storage.driver", "file")
	v.SetDefault("dashboard.notification_duration", "3s")
	v.SetDefault("tui.log_file", "task-dashboard-tui.log")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "memory", "file", "sqlite":
	case "mysql":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Dashboard.NotificationDuration <= 0 {
		return fmt.Errorf("dashboard.notification_duration must be positive")
	}

	return nil
}
