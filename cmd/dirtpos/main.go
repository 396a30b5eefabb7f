// Command dirtpos is a single-terminal point-of-sale CLI over the domain
// store: catalog management, cart building, checkout, reports and backups.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/config"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/obs"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/store"
)

// app carries the wired dependencies shared by every subcommand.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	blobs storage.Blobs
	store *store.Store
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()
	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)

	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		a.log.Warn().Err(err).Str("dir", cfg.DataDir).Msg("create data dir")
	}
	blobs, err := storage.Open(cfg.DBPath())
	if err != nil {
		// Degrade to a session-only store rather than refusing to start.
		a.log.Warn().Err(err).Str("path", cfg.DBPath()).Msg("open blob store, state will not persist")
		a.blobs = storage.NewMemory()
	} else {
		a.blobs = blobs
	}

	a.store = store.New(store.Options{
		Blobs:          a.blobs,
		Logger:         a.log,
		DefaultTaxRate: cfg.DefaultTaxRate,
	})
	return nil
}

func (a *app) teardown() {
	if a.blobs != nil {
		if err := a.blobs.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close blob store")
		}
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dirtpos",
		Short:         "Point-of-sale terminal for the Dirt inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}
	root.AddCommand(
		newItemsCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newReportCmd(a),
		newSettingsCmd(a),
		newBackupCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// parseMoney converts a decimal amount such as "25.00" to minor units.
func parseMoney(value string) (domain.Money, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return domain.RoundCents(v * 100), nil
}
