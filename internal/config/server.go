package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// ServerConfig holds the settings of the HTTP API.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Session      SessionConfig `mapstructure:"session"`
	RateLimit    RateLimit     `mapstructure:"rate_limit"`
}

// SessionConfig selects where simulation sessions live.
type SessionConfig struct {
	Backend   string        `mapstructure:"backend"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// RateLimit is a per-client token bucket.
type RateLimit struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("read_timeout", 15*time.Second)
	v.SetDefault("write_timeout", 15*time.Second)
	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.redis_addr", "localhost:6379")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.window", time.Minute)
}

// LoadServerConfig reads server settings from an optional YAML file and
// FINHEALTH_* environment variables (FINHEALTH_SESSION_BACKEND, ...).
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	setServerDefaults(v)

	v.SetEnvPrefix("FINHEALTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("server config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the server settings
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Session.RedisAddr == "" {
			return fmt.Errorf("session.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("session.backend must be '%s' or '%s'", SessionBackendMemory, SessionBackendRedis)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.capacity and rate_limit.window must be positive")
	}
	return nil
}
