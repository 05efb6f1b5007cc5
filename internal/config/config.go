package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string `toml:"environment"`

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

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// requests allowed per minute per client; 0 turns rate limiting off
	RateLimitAllowedPerMin int `toml:"rate_limit_allowed_per_min"`

	// schedules
	ScheduleCacheTTLMinutes     int   `toml:"schedule_cache_ttl_minutes"`
	PreferencesCacheSizeMB      int   `toml:"preferences_cache_size_mb"`
	PreferencesCacheTTLSeconds  int   `toml:"preferences_cache_ttl_seconds"`
	DefaultRestDays             []int `toml:"default_rest_days"`
	SessionTTLHours             int   `toml:"session_ttl_hours"`
	VerifyWorkoutTablesOnStart  bool  `toml:"verify_workout_tables_on_start"`
	CreateWorkoutTablesIfAbsent bool  `toml:"create_workout_tables_if_absent"`
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

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s is missing", env)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.ScheduleCacheTTLMinutes <= 0 {
		c.ScheduleCacheTTLMinutes = 60
	}
	if c.PreferencesCacheSizeMB <= 0 {
		c.PreferencesCacheSizeMB = 10
	}
	if c.PreferencesCacheTTLSeconds <= 0 {
		c.PreferencesCacheTTLSeconds = 300
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
}
