package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Remote task-management API
	Gateway GatewayConfig

	RateLimit RateLimitConfig
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

// GatewayConfig points at the remote task-management API.
type GatewayConfig struct {
	BaseURL  string
	TokenURL string // OAuth2 token endpoint; defaults to BaseURL + /oauth/token
	ClientID string
	Timeout  time.Duration
}

type RateLimitConfig struct {
	PerMin int // 0 disables rate limiting
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote task-management API
	cfg.Gateway.BaseURL = viper.GetString("gateway.base_url")
	cfg.Gateway.TokenURL = viper.GetString("gateway.token_url")
	cfg.Gateway.ClientID = viper.GetString("gateway.client_id")
	cfg.Gateway.Timeout = viper.GetDuration("gateway.timeout")
	if gatewayURL := viper.GetString("gateway_url"); gatewayURL != "" {
		cfg.Gateway.BaseURL = gatewayURL
	}
	if cfg.Gateway.BaseURL == "" {
		return nil, fmt.Errorf("gateway.base_url is required - please add a gateway section to config.yaml")
	}
	// If the token endpoint is not set, derive it from the base URL
	if cfg.Gateway.TokenURL == "" {
		cfg.Gateway.TokenURL = strings.TrimSuffix(cfg.Gateway.BaseURL, "/") + "/oauth/token"
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gateway.client_id", "shopfloor-tasks")
	viper.SetDefault("gateway.timeout", "10s")
	viper.SetDefault("rate_limit.per_min", 120)
}
