package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mesa-pacing/internal/config"
	"mesa-pacing/internal/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mesa-pacing",
		Short: "Budget pacing and bid adjustment for ad campaigns",
		Long: `mesa-pacing keeps campaign spend on its target curve. It ingests spend
events, re-evaluates every campaign on a fixed tick and publishes bid
multiplier and throttle decisions.

Configuration is read from the environment. Without a subcommand the
service is started.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the pacing loop and HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var campaigns int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns with a budget for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pool.Close()
			if err = db.Seed(cmd.Context(), pool, campaigns); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data inserted", slog.Int("campaigns", campaigns))
			return nil
		},
	}
	cmd.Flags().IntVarP(&campaigns, "campaigns", "n", 5, "number of demo campaigns")
	return cmd
}

// setup loads the configuration and installs the default logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(cfg.Log.Handler(os.Stdout))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
