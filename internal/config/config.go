// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // queue.timezone must resolve on hosts without zoneinfo

	"github.com/spf13/viper"
)

const envPrefix = "DISPARO"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Queue      QueueConfig      `mapstructure:"queue"`
	Settings   SettingsConfig   `mapstructure:"settings"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	// TriggerToken guards POST /disparos/process when set.
	TriggerToken string `mapstructure:"trigger_token"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GatewayConfig describes the WhatsApp gateway. BaseURL and APIKey are
// fallbacks used when the configuracoes table has no value for them.
type GatewayConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	APIKey         string               `mapstructure:"api_key"`
	Timeout        int                  `mapstructure:"timeout"`
	RatePerSecond  float64              `mapstructure:"rate_per_second"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type QueueConfig struct {
	BatchSize       int    `mapstructure:"batch_size"`
	IntervalSeconds int    `mapstructure:"interval_seconds"`
	Autostart       bool   `mapstructure:"autostart"`
	Timezone        string `mapstructure:"timezone"`
}

type SettingsConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.trigger_token", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.base_url", "")
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.timeout", 30)
	v.SetDefault("gateway.rate_per_second", 0)
	v.SetDefault("gateway.circuit_breaker.max_requests", 3)
	v.SetDefault("gateway.circuit_breaker.interval", 60)
	v.SetDefault("gateway.circuit_breaker.timeout", 60)
	v.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("queue.batch_size", 50)
	v.SetDefault("queue.interval_seconds", 60)
	v.SetDefault("queue.autostart", true)
	v.SetDefault("queue.timezone", "America/Sao_Paulo")
	v.SetDefault("settings.cache_ttl_seconds", 300)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 110)
}

// LoadConfig reads the YAML file at configPath. Every key can be overridden
// from the environment, e.g. DISPARO_GATEWAY_API_KEY.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Queue.BatchSize <= 0 {
		return nil, fmt.Errorf("queue.batch_size must be positive, got %d", config.Queue.BatchSize)
	}
	if config.Queue.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("queue.interval_seconds must be positive, got %d", config.Queue.IntervalSeconds)
	}
	if _, err := time.LoadLocation(config.Queue.Timezone); err != nil {
		return nil, fmt.Errorf("invalid queue.timezone %q: %w", config.Queue.Timezone, err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the database URL form expected by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Location returns the timezone used to render template dates.
func (q *QueueConfig) Location() *time.Location {
	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Interval returns the scheduler tick.
func (q *QueueConfig) Interval() time.Duration {
	return time.Duration(q.IntervalSeconds) * time.Second
}
