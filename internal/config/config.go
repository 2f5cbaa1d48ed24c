package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBackendBaseURL = "http://localhost:3000/api"

	// BackendBaseURLEnvVar overrides backend_base_url from the config file
	BackendBaseURLEnvVar = "WELLNESS_API_BASE_URL"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// backend REST API
	BackendBaseURL        string `toml:"backend_base_url"`
	BackendTimeoutSeconds int    `toml:"backend_timeout_seconds"`

	// how many records each page asks the backend for
	DashboardProgressLimit int `toml:"dashboard_progress_limit"`
	DashboardWorkoutsLimit int `toml:"dashboard_workouts_limit"`
	StreakProgressLimit    int `toml:"streak_progress_limit"`
	ProgressLimit          int `toml:"progress_limit"`
	WorkoutsLimit          int `toml:"workouts_limit"`
	NutritionLimit         int `toml:"nutrition_limit"`
	RecentActivityWindow   int `toml:"recent_activity_window"`
	TableRows              int `toml:"table_rows"`

	// sessions
	SessionTTLMinutes  int `toml:"session_ttl_minutes"`
	SessionCacheSizeMB int `toml:"session_cache_size_mb"`

	// redis is optional; when host is empty sessions are kept in memory
	// and insight generation is not rate limited
	RedisHost                     string `toml:"redis_host"`
	RedisPort                     string `toml:"redis_port"`
	InsightsGenerateAllowedPerMin int    `toml:"insights_generate_allowed_per_min"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
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
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the config for the given env,
// with defaults applied for the values not set in the file.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	if baseURL := os.Getenv(BackendBaseURLEnvVar); baseURL != "" {
		cfg.BackendBaseURL = baseURL
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8501
	}
	if c.BackendBaseURL == "" {
		c.BackendBaseURL = DefaultBackendBaseURL
	}
	c.BackendBaseURL = strings.TrimSuffix(c.BackendBaseURL, "/")
	if c.BackendTimeoutSeconds <= 0 {
		c.BackendTimeoutSeconds = 10
	}
	if c.DashboardProgressLimit <= 0 {
		c.DashboardProgressLimit = 7
	}
	if c.DashboardWorkoutsLimit <= 0 {
		c.DashboardWorkoutsLimit = 50
	}
	if c.StreakProgressLimit <= 0 {
		c.StreakProgressLimit = 60
	}
	if c.ProgressLimit <= 0 {
		c.ProgressLimit = 30
	}
	if c.WorkoutsLimit <= 0 {
		c.WorkoutsLimit = 20
	}
	if c.NutritionLimit <= 0 {
		c.NutritionLimit = 20
	}
	if c.RecentActivityWindow <= 0 {
		c.RecentActivityWindow = 5
	}
	if c.TableRows <= 0 {
		c.TableRows = 10
	}
	if c.SessionTTLMinutes <= 0 {
		c.SessionTTLMinutes = 60
	}
	if c.SessionCacheSizeMB <= 0 {
		c.SessionCacheSizeMB = 16
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.InsightsGenerateAllowedPerMin <= 0 {
		c.InsightsGenerateAllowedPerMin = 6
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.BackendTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}
