// Package config loads tourgraph settings from an optional config file and
// TOURGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tourgraph/store"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type StorageConfig struct {
	Driver   string        `mapstructure:"driver"`
	Path     string        `mapstructure:"path"`
	InMemory bool          `mapstructure:"in_memory"`
	Breaker  BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold float64       `mapstructure:"failure_threshold"`
	MinRequests      uint32        `mapstructure:"min_requests"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	// Endpoint is the OTLP gRPC collector address; empty disables export.
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// DemoConfig controls seeding an empty graph at startup.
type DemoConfig struct {
	SeedOnEmpty bool  `mapstructure:"seed_on_empty"`
	Seed        int64 `mapstructure:"seed"`
}

// setDefaults registers every key so env-only deployments still resolve.
func setDefaults(v *viper.Viper) {
	b := store.DefaultBreakerConfig()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("storage.driver", store.DriverJSON)
	v.SetDefault("storage.path", "./data/data.json")
	v.SetDefault("storage.in_memory", false)
	v.SetDefault("storage.breaker.enabled", b.Enabled)
	v.SetDefault("storage.breaker.max_requests", b.MaxRequests)
	v.SetDefault("storage.breaker.interval", b.Interval)
	v.SetDefault("storage.breaker.timeout", b.Timeout)
	v.SetDefault("storage.breaker.failure_threshold", b.FailureThreshold)
	v.SetDefault("storage.breaker.min_requests", b.MinRequests)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.insecure", true)
	v.SetDefault("tracing.service_name", "tourgraph")
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("demo.seed_on_empty", false)
	v.SetDefault("demo.seed", 1)
}

// Load reads configuration from path (if non-empty) and the environment.
// Environment variables use the TOURGRAPH_ prefix with dots replaced by
// underscores, e.g. TOURGRAPH_STORAGE_DRIVER.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TOURGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values that would make startup fail.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case store.DriverJSON, store.DriverYAML:
		if c.Storage.Path == "" {
			errs = append(errs, fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver))
		}
	case store.DriverBadger:
		if c.Storage.Path == "" && !c.Storage.InMemory {
			errs = append(errs, errors.New("storage.path is required for on-disk badger"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not one of json|yaml|badger", c.Storage.Driver))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug|info|warn|error", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of json|console", c.Log.Format))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio %.2f is outside [0, 1]", c.Tracing.SampleRatio))
	}
	if b := c.Storage.Breaker; b.Enabled && (b.FailureThreshold <= 0 || b.FailureThreshold > 1) {
		errs = append(errs, fmt.Errorf("storage.breaker.failure_threshold %.2f is outside (0, 1]", b.FailureThreshold))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// StoreConfig maps the storage section onto store.Config.
func (c *Config) StoreConfig() store.Config {
	b := c.Storage.Breaker

	return store.Config{
		Driver:   c.Storage.Driver,
		Path:     c.Storage.Path,
		InMemory: c.Storage.InMemory,
		Breaker: store.BreakerConfig{
			Enabled:          b.Enabled,
			MaxRequests:      b.MaxRequests,
			Interval:         b.Interval,
			Timeout:          b.Timeout,
			FailureThreshold: b.FailureThreshold,
			MinRequests:      b.MinRequests,
		},
	}
}
