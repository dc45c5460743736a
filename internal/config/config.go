package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. It is publicly known and
// must never be relied on outside local development.
const DefaultJWTSecret = "change-me"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application level configuration loaded from an optional file and
// environment variables. Environment variables win over file values.
type Config struct {
	Env            string   `yaml:"env" toml:"env"`
	ServerPort     string   `yaml:"server_port" toml:"server_port"`
	DBDriver       string   `yaml:"db_driver" toml:"db_driver"`
	DatabaseDSN    string   `yaml:"database_dsn" toml:"database_dsn"`
	AutoMigrate    bool     `yaml:"auto_migrate" toml:"auto_migrate"`
	RedisAddr      string   `yaml:"redis_addr" toml:"redis_addr"`
	RedisDB        int      `yaml:"redis_db" toml:"redis_db"`
	RedisPass      string   `yaml:"redis_password" toml:"redis_password"`
	JWTSecret      string   `yaml:"jwt_secret" toml:"jwt_secret"`
	KafkaBrokers   []string `yaml:"kafka_brokers" toml:"kafka_brokers"`
	KafkaTopic     string   `yaml:"kafka_topic" toml:"kafka_topic"`
	LogLevel       string   `yaml:"log_level" toml:"log_level"`
	LogFormat      string   `yaml:"log_format" toml:"log_format"`
	RequestTimeout int      `yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`
	SwaggerHost    string   `yaml:"swagger_host" toml:"swagger_host"`

	// InsecureJWTSecret reports that no secret was configured and DefaultJWTSecret is in use.
	InsecureJWTSecret bool `yaml:"-" toml:"-"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Env:            "development",
		ServerPort:     "8080",
		DBDriver:       DriverMySQL,
		DatabaseDSN:    "user:password@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=True&loc=Local",
		KafkaTopic:     "blog-events",
		LogLevel:       "info",
		LogFormat:      "json",
		RequestTimeout: 10,
	}
}

// Load builds Config from CONFIG_FILE (when set) and the environment.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.AutoMigrate = getEnvBool("DB_AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.RequestTimeout = getEnvInt("REQUEST_TIMEOUT_SECONDS", cfg.RequestTimeout)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = splitList(v)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
	}
	cfg.InsecureJWTSecret = cfg.JWTSecret == DefaultJWTSecret

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if c.IsProduction() && c.InsecureJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got %d", c.RequestTimeout)
	}
	return nil
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

// RequestTimeoutDuration is the per-request deadline applied by the router.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%s: unsupported config format (want .yaml, .yml or .toml)", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
