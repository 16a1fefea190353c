package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/progress"

	"github.com/BurntSushi/toml"
)

const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	defaultSameOrigin     = "http://localhost:3000"
	defaultRequestTimeout = 15
	defaultMemoryCacheMB  = 1
)

var ErrNoEnvSection = errors.New("config has no section for environment")

type Config struct {
	Environment string `toml:"-"`

	Host                  string `toml:"host"`
	Port                  int    `toml:"port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// remote API
	ApiHost               string `toml:"api_host"`
	SameOrigin            string `toml:"same_origin"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`

	// session storage
	SessionBackend       string `toml:"session_backend"`
	SessionFilePath      string `toml:"session_file_path"`
	MemorySessionCacheMB int    `toml:"memory_session_cache_mb"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// companion service
	AllowedOrigins              []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`

	Goals progress.Goal `toml:"goals"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEnvSection, env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied and environment overrides on top.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// Default is used when no config file is available, e.g. by the terminal client.
func Default(env string) *Config {
	cfg := &Config{Environment: strings.ToLower(env)}
	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "9101"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SameOrigin == "" {
		c.SameOrigin = defaultSameOrigin
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = defaultRequestTimeout
	}
	if c.SessionBackend == "" {
		c.SessionBackend = SessionBackendFile
	}
	if c.MemorySessionCacheMB <= 0 {
		c.MemorySessionCacheMB = defaultMemoryCacheMB
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	c.Goals = c.Goals.WithDefaults()
}

// ApplyEnv lets NEXT_PUBLIC_API_HOST override the configured API host.
func (c *Config) ApplyEnv() {
	if apiHost := strings.TrimSpace(os.Getenv("NEXT_PUBLIC_API_HOST")); apiHost != "" {
		c.ApiHost = apiHost
	}
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown session backend: %s", c.SessionBackend)
	}
	return nil
}
