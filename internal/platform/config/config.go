// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// SettingsNamespace is the koanf path of the module settings read by the
// clone service.
const SettingsNamespace = "quick_node_clone.settings"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Groups    GroupsConfig    `koanf:"groups"`
	Store     StoreConfig     `koanf:"store"`
	Clone     CloneConfig     `koanf:"clone"`
	I18n      I18nConfig      `koanf:"i18n"`
	Telemetry TelemetryConfig `koanf:"telemetry"`

	settings *Settings
}

// Settings returns the read-only module settings namespace.
func (c *Config) Settings() *Settings {
	if c.settings == nil {
		return NewSettings(nil)
	}
	return c.settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// GroupsConfig holds the group-association API settings. The lookup is
// skipped entirely when disabled.
type GroupsConfig struct {
	Enabled bool         `koanf:"enabled"`
	Client  ClientConfig `koanf:"client"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// StoreConfig holds the in-memory entity store settings.
type StoreConfig struct {
	// Fixtures is a YAML file seeded into the store at startup. Empty
	// starts with an empty store.
	Fixtures string `koanf:"fixtures"`
}

// CloneConfig holds clone behavior that is not part of the site settings.
type CloneConfig struct {
	// ClearUnresolvedBlocks nulls the block pointers of inline block
	// components whose block could not be loaded or decoded.
	ClearUnresolvedBlocks bool `koanf:"clear_unresolved_blocks"`
}

// I18nConfig holds string translations keyed by language then source text.
type I18nConfig struct {
	Translations map[string]map[string]string `koanf:"translations"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
