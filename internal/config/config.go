// Package config loads service settings from struct defaults, an optional
// dotenv file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvFileVar overrides the dotenv file path.
const EnvFileVar = "ENV_FILE"

const defaultEnvFile = ".env"

// Config keys are the lower-cased environment variable names.
type Config struct {
	DBDriver          string        `koanf:"db_driver"`
	DBUser            string        `koanf:"db_user"`
	DBPassword        string        `koanf:"db_password"`
	DBHost            string        `koanf:"db_host"`
	DBPort            int           `koanf:"db_port"`
	DBName            string        `koanf:"db_name"`
	DBMaxOpenConns    int           `koanf:"db_max_open_conns"`
	DBMaxIdleConns    int           `koanf:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `koanf:"db_conn_max_lifetime"`

	Port     int `koanf:"port"`
	GRPCPort int `koanf:"grpc_port"`

	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`

	QueryMaxLimit   int           `koanf:"query_max_limit"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaultConfig() Config {
	return Config{
		DBDriver:          "postgres",
		DBHost:            "localhost",
		DBPort:            5432,
		DBMaxOpenConns:    50,
		DBMaxIdleConns:    25,
		DBConnMaxLifetime: 5 * time.Minute,
		Port:              3001,
		GRPCPort:          50051,
		CacheTTL:          5 * time.Minute,
		QueryMaxLimit:     100,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		LogFormat:         "json",
	}
}

// Load builds the configuration and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := k.Load(file.Provider(envFile), dotenv.ParserEnv("", ".", strings.ToLower)); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or mysql, got %q", c.DBDriver))
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		errs = append(errs, fmt.Errorf("DB_PORT out of range: %d", c.DBPort))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("GRPC_PORT out of range: %d", c.GRPCPort))
	}
	if c.QueryMaxLimit <= 0 {
		errs = append(errs, fmt.Errorf("QUERY_MAX_LIMIT must be positive, got %d", c.QueryMaxLimit))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL))
	}

	return errors.Join(errs...)
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GRPCAddr returns "" when the gRPC listener is disabled.
func (c *Config) GRPCAddr() string {
	if c.GRPCPort == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
