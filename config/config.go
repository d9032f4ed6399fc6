package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// JWTConfig holds token validation configuration.
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// GeminiConfig holds configuration for the Gemini extraction/insight service.
type GeminiConfig struct {
	APIKey      string        `yaml:"api_key"`
	ScanModel   string        `yaml:"scan_model"`
	ChatModel   string        `yaml:"chat_model"`
	ScanTimeout time.Duration `yaml:"scan_timeout"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	applyDefaults(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required (config file or DATABASE_URL)")
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Gemini.ScanModel == "" {
		cfg.Gemini.ScanModel = "gemini-2.0-flash"
	}
	if cfg.Gemini.ChatModel == "" {
		cfg.Gemini.ChatModel = "gemini-1.5-flash"
	}
	if cfg.Gemini.ScanTimeout == 0 {
		cfg.Gemini.ScanTimeout = 30 * time.Second
	}
}
