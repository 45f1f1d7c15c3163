package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Importer ImporterConfig `yaml:"importer"`
	Log      LogConfig      `yaml:"log"`
}

type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type ServerConfig struct {
	Port    string `yaml:"port"`
	Timeout int    `yaml:"timeout"`
	Debug   bool   `yaml:"debug"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DSN builds the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SessionConfig controls the token lifecycle.
type SessionConfig struct {
	// TTL is the sliding-session lifetime in seconds.
	TTL int `yaml:"ttl"`
	// MaxAge is the absolute session ceiling in seconds, measured from
	// issuance. Zero disables the ceiling.
	MaxAge int `yaml:"max_age"`
	// MaxTokensPerUser caps concurrent live tokens per user. Zero means
	// unlimited; on overflow the oldest live token is revoked.
	MaxTokensPerUser int `yaml:"max_tokens_per_user"`
	// PurgeInterval is the delay between purge sweeps, in seconds.
	PurgeInterval int `yaml:"purge_interval"`
}

// TTLDuration returns the session TTL, falling back to one hour.
func (c SessionConfig) TTLDuration() time.Duration {
	if c.TTL <= 0 {
		return time.Hour
	}
	return time.Duration(c.TTL) * time.Second
}

// MaxAgeDuration returns the absolute ceiling, zero when disabled.
func (c SessionConfig) MaxAgeDuration() time.Duration {
	if c.MaxAge <= 0 {
		return 0
	}
	return time.Duration(c.MaxAge) * time.Second
}

// PurgeIntervalDuration returns the sweep interval, falling back to 15 minutes.
func (c SessionConfig) PurgeIntervalDuration() time.Duration {
	if c.PurgeInterval <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.PurgeInterval) * time.Second
}

type ImporterConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	Development bool   `yaml:"development"`
}

// LoadConfig reads the YAML config from CONFIG_PATH, defaulting to
// ./configs/server.yaml.
func LoadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/server.yaml"
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
