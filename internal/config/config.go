package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv           string
	DataDir          string
	DBFile           string
	LogFormat        string
	LogLevel         string
	MetricsNamespace string
	DefaultTaxRate   float64
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		DataDir:          valueOrDefault(k.String("POS_DATA_DIR"), defaultDataDir()),
		DBFile:           valueOrDefault(k.String("POS_DB_FILE"), "pos.db"),
		LogFormat:        valueOrDefault(k.String("POS_LOG_FORMAT"), "console"),
		LogLevel:         valueOrDefault(k.String("POS_LOG_LEVEL"), "info"),
		MetricsNamespace: valueOrDefault(k.String("POS_METRICS_NAMESPACE"), "dirtpos"),
		DefaultTaxRate:   parseRate(k.String("POS_DEFAULT_TAX_RATE"), 0),
	}
	return cfg, nil
}

// DBPath returns the full path of the blob store file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

func defaultDataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".dirtpos")
	}
	return "."
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseRate(value string, fallback float64) float64 {
	base := strings.TrimSpace(value)
	if base == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(base, 64)
	if err != nil || rate < 0 {
		return fallback
	}
	return rate
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
