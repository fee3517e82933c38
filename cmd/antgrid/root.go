package main

import (
	"context"
	"net/http"
	"time"

	"github.com/annel0/antgrid/internal/config"
	"github.com/annel0/antgrid/internal/logging"
	"github.com/annel0/antgrid/internal/metrics"
	"github.com/annel0/antgrid/internal/observability"
	"github.com/annel0/antgrid/internal/sim"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	registry    string
	metricsAddr string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "antgrid <steps>",
		Short: "Langton's ant on an unbounded chunked grid",
		Long: `antgrid runs Langton's ant for the given number of steps on an unbounded
grid stored as deduplicated 32x32 chunks, then prints the elapsed time,
registry and map sizes and the number of black cells.`,
		Example: `  antgrid 1000000
  antgrid 1e7 --registry ordered
  antgrid 1e8 --config antgrid.yaml --metrics-addr :2112`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.Wrapf(ErrInvalidSteps, "need number of turns, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, steps)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (default $ANTGRID_CONFIG)")
	cmd.Flags().StringVar(&opts.registry, "registry", "", "chunk registry backend: hash or ordered")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	return cmd
}

// loadConfig читает конфигурацию и применяет флаги командной строки
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.registry != "" {
		cfg.Sim.RegistryBackend = opts.registry
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions, steps uint64) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, _ := cfg.Log.LogLevel()
	if err := logging.InitDefaultLogger("antgrid", logging.Options{Level: level, File: cfg.Log.File}); err != nil {
		return errors.Wrap(err, "init logging")
	}
	defer logging.CloseDefaultLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return errors.Wrap(err, "init telemetry")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
			}
		}()
	}

	runnerOpts := []sim.Option{}
	if addr := cfg.Metrics.GetAddr(); addr != "" {
		collector := metrics.NewCollector()
		srv := collector.Serve(addr)
		defer shutdownServer(srv)
		runnerOpts = append(runnerOpts, sim.WithCollector(collector))
	}

	runner, err := sim.NewRunner(cfg.Sim, runnerOpts...)
	if err != nil {
		return err
	}

	report := runner.Run(ctx, steps)
	return report.Print(cmd.OutOrStdout())
}

func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
