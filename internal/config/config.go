package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
	Log LogConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string
	Timezone       string
}

// LogConfig holds log sink settings. The TUI owns the terminal, so
// logs go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix FINFOLIO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:3000/api/")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("ui.currency_symbol", "R")
	v.SetDefault("ui.timezone", "Africa/Johannesburg")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "finfolio", "finfolio.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FINFOLIO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "finfolio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && cfgPath != "" {
		return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:        v.GetString("api.base_url"),
			TimeoutSeconds: v.GetInt("api.timeout_seconds"),
		},
		UI: UIConfig{
			CurrencySymbol: v.GetString("ui.currency_symbol"),
			Timezone:       v.GetString("ui.timezone"),
		},
		Log: LogConfig{
			Path:  v.GetString("log.path"),
			Level: v.GetString("log.level"),
		},
	}

	if !strings.HasSuffix(cfg.API.BaseURL, "/") {
		cfg.API.BaseURL += "/"
	}
	return cfg, nil
}
