package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "",
		"POS_DATA_DIR":          "",
		"POS_DB_FILE":           "",
		"POS_LOG_FORMAT":        "",
		"POS_LOG_LEVEL":         "",
		"POS_METRICS_NAMESPACE": "",
		"POS_DEFAULT_TAX_RATE":  "",
	})
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.NotEmpty(t, cfg.DataDir)
	require.Equal(t, "pos.db", cfg.DBFile)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "dirtpos", cfg.MetricsNamespace)
	require.Zero(t, cfg.DefaultTaxRate)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "production",
		"POS_DATA_DIR":          "/var/lib/dirtpos",
		"POS_DB_FILE":           "store.db",
		"POS_LOG_FORMAT":        "json",
		"POS_LOG_LEVEL":         "debug",
		"POS_METRICS_NAMESPACE": "shopfront",
		"POS_DEFAULT_TAX_RATE":  "0.08",
	})
	require.NoError(t, err)

	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, "/var/lib/dirtpos", cfg.DataDir)
	require.Equal(t, "store.db", cfg.DBFile)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "shopfront", cfg.MetricsNamespace)
	require.InDelta(t, 0.08, cfg.DefaultTaxRate, 1e-9)
	require.Equal(t, filepath.Join("/var/lib/dirtpos", "store.db"), cfg.DBPath())
}

func TestLoadBadTaxRateFallsBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"POS_DEFAULT_TAX_RATE": "not-a-number",
	})
	require.NoError(t, err)
	require.Zero(t, cfg.DefaultTaxRate)

	cfg, err = config.LoadForTests(map[string]string{
		"POS_DEFAULT_TAX_RATE": "-0.5",
	})
	require.NoError(t, err)
	require.Zero(t, cfg.DefaultTaxRate)
}
