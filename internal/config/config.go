package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Giphy  GiphyConfig  `mapstructure:"giphy"`
	Feed   FeedConfig   `mapstructure:"feed"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// GiphyConfig carries the provider credential and endpoint. The API
// key is never validated here beyond being present; a bad key shows up
// as an authentication failure at fetch time.
type GiphyConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type FeedConfig struct {
	// RefreshInterval enables periodic refresh when positive; 0 disables it.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	// RefreshOnStart triggers one fetch as soon as the service is wired up.
	RefreshOnStart bool `mapstructure:"refresh_on_start"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("giphy.base_url", "https://api.giphy.com")
	v.SetDefault("feed.refresh_interval", time.Duration(0))
	v.SetDefault("feed.refresh_on_start", true)

	// Read config file (optional, env vars can provide everything)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GIPHY_API_KEY via AutomaticEnv maps to giphy.api_key
	if cfg.Giphy.APIKey == "" {
		cfg.Giphy.APIKey = v.GetString("giphy.api_key")
	}
	if cfg.Giphy.APIKey == "" {
		return nil, fmt.Errorf("giphy.api_key is required (set GIPHY_API_KEY)")
	}

	return &cfg, nil
}
