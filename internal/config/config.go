// Package config loads service configuration from defaults, an optional
// YAML file and IES_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/security"
	"github.com/spf13/viper"
)

const envPrefix = "IES"

// RedisConfig selects the rate limit backend. URL, when set, overrides the
// other connection fields.
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type RateLimitConfig struct {
	PerMinute       int `mapstructure:"per_minute"`
	BurstMultiplier int `mapstructure:"burst_multiplier"`
}

type CacheConfig struct {
	TTL  time.Duration `mapstructure:"ttl"`
	Size int           `mapstructure:"size"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CompressionConfig struct {
	Enabled bool `mapstructure:"enabled"`
	MinSize int  `mapstructure:"min_size"`
	Level   int  `mapstructure:"level"`
}

type RetentionConfig struct {
	Days     int           `mapstructure:"days"`
	Interval time.Duration `mapstructure:"interval"`
}

type Config struct {
	Port      int             `mapstructure:"port"`
	DataDir   string          `mapstructure:"data_dir"`
	LogLevel  string          `mapstructure:"log_level"`
	GinMode   string          `mapstructure:"gin_mode"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Security    security.Config   `mapstructure:"security"`
	Compression CompressionConfig `mapstructure:"compression"`
	Retention   RetentionConfig   `mapstructure:"retention"`
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("data_dir", "./data")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("rate_limit.per_minute", 60)
	v.SetDefault("rate_limit.burst_multiplier", 2)
	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.size", 512)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("security.max_text_length", security.DefaultConfig().MaxTextLength)
	v.SetDefault("security.enable_hsts", false)
	v.SetDefault("compression.enabled", true)
	v.SetDefault("compression.min_size", 1024)
	v.SetDefault("compression.level", 6)
	v.SetDefault("retention.days", 365)
	v.SetDefault("retention.interval", 24*time.Hour)
}

// Load reads the configuration. An explicit path must exist; without one,
// config.yaml is searched in . and $HOME/.ies and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewConfigurationError("failed to read config file "+path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ies")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, apperrors.NewConfigurationError("failed to read config file", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigurationError("failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot start with
func (c *Config) Validate() error {
	problems := map[string]string{}

	if c.Port < 1 || c.Port > 65535 {
		problems["port"] = fmt.Sprintf("must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataDir == "" {
		problems["data_dir"] = "must not be empty"
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems["gin_mode"] = "must be debug, release or test"
	}
	if c.RateLimit.PerMinute <= 0 {
		problems["rate_limit.per_minute"] = "must be positive"
	}
	if c.RateLimit.BurstMultiplier <= 0 {
		problems["rate_limit.burst_multiplier"] = "must be positive"
	}
	if c.Cache.TTL <= 0 {
		problems["cache.ttl"] = "must be positive"
	}
	if c.Cache.Size <= 0 {
		problems["cache.size"] = "must be positive"
	}
	if c.Compression.Enabled && (c.Compression.Level < 1 || c.Compression.Level > 9) {
		problems["compression.level"] = "must be between 1 and 9"
	}
	if c.Retention.Days < 0 {
		problems["retention.days"] = "must not be negative"
	}
	if c.Retention.Days > 0 && c.Retention.Interval <= 0 {
		problems["retention.interval"] = "must be positive when retention is enabled"
	}
	if c.Security.MaxTextLength <= 0 {
		problems["security.max_text_length"] = "must be positive"
	}

	if len(problems) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(problems))
	for key, msg := range problems {
		msgs = append(msgs, key+" "+msg)
	}
	sort.Strings(msgs)
	return apperrors.NewConfigurationError("invalid configuration: "+strings.Join(msgs, "; "), nil)
}
