package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"claimstats/domain/core"
	"claimstats/internal"
	"claimstats/internal/config"
	"claimstats/internal/container"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "claimstats",
		Short: "Statistical report over the claims and monthly revenue datasets",
		Long: `Reads data/claims.csv and data/revenue_monthly.csv, computes descriptive
statistics, frequency bins, correlations, hypothesis tests, an expected value
and an empirical probability, and writes tables to outputs/ and figures to
figures/.

Locations can be changed with REPORT_ROOT, DATA_DIR, FIGURES_DIR, OUTPUT_DIR,
CLAIMS_FILE and REVENUE_FILE (also read from a .env file).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(ctx context.Context) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level)).With("run_id", core.NewRunID().String())
	defer logger.Sync()

	c, err := container.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting report: data=%s figures=%s outputs=%s", cfg.Paths.DataDir, cfg.Paths.FiguresDir, cfg.Paths.OutputDir)
	result, err := c.ReportService.Run(ctx)
	if err != nil {
		logger.Error("Report failed: %v", err)
		return err
	}

	fmt.Printf("Analysis complete. %d artifacts written to %s and %s.\n",
		len(result.Manifest.Artifacts), cfg.Paths.FiguresDir, cfg.Paths.OutputDir)
	return nil
}
