package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/haversine/internal/config"
	"github.com/UnknownOlympus/haversine/internal/dataset"
	"github.com/UnknownOlympus/haversine/internal/generator"
	"github.com/UnknownOlympus/haversine/internal/logger"
	"github.com/UnknownOlympus/haversine/internal/metrics"
	"github.com/UnknownOlympus/haversine/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// main is the entry point of the pair generator.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the generate command with args and returns the process exit code.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	rootCmd := &cobra.Command{
		Use:          "generate [count]",
		Short:        "Generate random coordinate pairs for the haversine benchmark",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// run parses the count, generates the pairs and saves them to the configured store.
func run(ctx context.Context, args []string, out io.Writer) error {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env, os.Stderr)

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	defer func() {
		if errExport := metrics.Export(cfg.MetricsFile, reg); errExport != nil {
			log.ErrorContext(ctx, "Failed to export metrics", "path", cfg.MetricsFile, "error", errExport)
		}
	}()

	count, err := generator.ParseCount(args)
	if err != nil {
		appMetrics.RunErrors.WithLabelValues(service.ErrorClass(err)).Inc()
		return err
	}

	store, err := dataset.NewStore(ctx, dataset.StoreConfig{
		Type:   dataset.StoreType(cfg.Store),
		Path:   cfg.DataFile,
		DSN:    cfg.Database.DSN(),
		Logger: log,
	})
	if err != nil {
		appMetrics.RunErrors.WithLabelValues(service.ErrorClass(err)).Inc()
		return fmt.Errorf("failed to open dataset store: %w", err)
	}
	defer store.Close()

	log.DebugContext(ctx, "Dataset store initialized", "store", cfg.Store, "destination", store.String())

	genService := service.NewGeneratorService(log, store, generator.New(cfg.Seed), appMetrics, out)

	return genService.Run(ctx, count)
}
