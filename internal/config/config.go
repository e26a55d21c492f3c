package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type DashboardConfig struct {
	DailyWindowDays     int
	MonthlyWindowMonths int
}

type HistoryConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Dashboard   DashboardConfig
	History     HistoryConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Dashboard: DashboardConfig{
			DailyWindowDays:     v.GetInt("DASHBOARD_DAILY_WINDOW_DAYS"),
			MonthlyWindowMonths: v.GetInt("DASHBOARD_MONTHLY_WINDOW_MONTHS"),
		},
		History: HistoryConfig{
			DefaultPageSize: v.GetInt("HISTORY_DEFAULT_PAGE_SIZE"),
			MaxPageSize:     v.GetInt("HISTORY_MAX_PAGE_SIZE"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Dashboard.DailyWindowDays <= 0 {
		cfg.Dashboard.DailyWindowDays = 3
	}
	if cfg.Dashboard.MonthlyWindowMonths <= 0 {
		cfg.Dashboard.MonthlyWindowMonths = 6
	}
	if cfg.History.DefaultPageSize <= 0 {
		cfg.History.DefaultPageSize = 10
	}
	if cfg.History.MaxPageSize <= 0 {
		cfg.History.MaxPageSize = 100
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.History.DefaultPageSize > cfg.History.MaxPageSize {
		return fmt.Errorf("HISTORY_DEFAULT_PAGE_SIZE must not exceed HISTORY_MAX_PAGE_SIZE")
	}
	return nil
}
