package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis, used by the request rate limiter
	RedisHost              string `toml:"redis_host"`
	RedisPort              string `toml:"redis_port"`
	RateLimitAllowedPerMin int    `toml:"rate_limit_allowed_per_min"`
	// browser dashboards allowed to call the API
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	// metrics & tracing
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	TracingEnabled        bool   `toml:"tracing_enabled"`
	// participant id -> user id cache
	UserKeyCacheSizeMB int `toml:"user_key_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("config: port must be set")
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("config: postgres host and db name must be set")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RateLimitAllowedPerMin <= 0 {
		c.RateLimitAllowedPerMin = 600
	}
	if c.UserKeyCacheSizeMB <= 0 {
		c.UserKeyCacheSizeMB = 10
	}
}
