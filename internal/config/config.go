package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"calsdt/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config represents the host application configuration. The analysis options
// themselves travel with each request or config file, not the environment.
type Config struct {
	Server  ServerConfig  `validate:"required"`
	Log     LogConfig     `validate:"required"`
	Analyze AnalyzeConfig `validate:"required"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	GinMode      string `validate:"oneof=debug release test"`
	MaxBodyBytes int64  `validate:"gt=0"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	AppEnv string `validate:"required"`
}

// AnalyzeConfig holds batch execution settings
type AnalyzeConfig struct {
	Workers int `validate:"gte=1,lte=1024"`
}

const defaultMaxBodyBytes = 10 << 20

// Load reads configuration from the environment, after applying any .env
// files given (missing files are ignored), and validates it.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, errors.Wrapf(errors.ConfigInvalid(err.Error()), "failed to load %s", f)
			}
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			GinMode:      getEnvOrDefault("GIN_MODE", "release"),
			MaxBodyBytes: getEnvInt64OrDefault("MAX_BODY_BYTES", defaultMaxBodyBytes),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			AppEnv: getEnvOrDefault("APP_ENV", "production"),
		},
		Analyze: AnalyzeConfig{
			Workers: getEnvIntOrDefault("ANALYZE_WORKERS", runtime.NumCPU()),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// IsDevelopment reports whether APP_ENV selects the development profile
func (c *Config) IsDevelopment() bool {
	return c.Log.AppEnv == "development"
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
