package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownEnv = errors.New("unknown env")

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	CacheSizeMB                 int      `toml:"cache_size_mb"`
	DeloadEnabled               bool     `toml:"deload_enabled"`
	DeloadFactor                float64  `toml:"deload_factor"`
	AllowedOrigins              []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnv, env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("missing [%s] config table", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML config file, picks the table for env and applies
// MESO_* environment overrides on top of it.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is like Load, but reads the TOML from a string.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides(lookup func(string) (string, bool)) error {
	overrideStr := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			log.Debugf("config: %s overridden from env", key)
			*dst = v
		}
	}

	overrideStr("MESO_HOST", &c.Host)
	overrideStr("MESO_POSTGRES_HOST", &c.PostgresHost)
	overrideStr("MESO_POSTGRES_PORT", &c.PostgresPort)
	overrideStr("MESO_POSTGRES_DB_NAME", &c.PostgresDBName)
	overrideStr("MESO_POSTGRES_USER", &c.PostgresUser)
	overrideStr("MESO_REDIS_HOST", &c.RedisHost)
	overrideStr("MESO_REDIS_PORT", &c.RedisPort)
	overrideStr("MESO_LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup("MESO_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MESO_PORT [%s]: %w", v, err)
		}
		c.Port = port
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.CacheSizeMB <= 0 {
		c.CacheSizeMB = 16
	}
	if c.DeloadFactor <= 0 || c.DeloadFactor > 1 {
		c.DeloadFactor = 0.6
	}
}
