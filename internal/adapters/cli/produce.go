package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/bakery-go/internal/adapters/metrics"
	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/application/production/services"
	"github.com/andrescamacho/bakery-go/internal/application/setup"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/internal/domain/shared"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/config"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/logging"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/pidfile"
)

// NewProduceCommand creates the produce command
func NewProduceCommand() *cobra.Command {
	var (
		planSpecs []string
		batchSize int
		interval  time.Duration
		pidPath   string
	)

	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Run a production plan to completion",
		Long: `Run a production plan to completion.

Every tick produces up to one batch per planned flavor. A flavor that has
reached its target stops receiving doughnuts while the others continue.
The run ends once every target is met. Entries with a quantity of zero
or less are ignored.

Examples:
  bakery produce --plan vanilla=120
  bakery produce --plan vanilla=30 --plan chocolate=80 --interval 1s
  bakery produce --plan caramel=1 --batch-size 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := parsePlan(planSpecs)
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Choose at least one flavor with a positive quantity, e.g. --plan vanilla=120")
				return nil
			}

			cfg, logger, err := loadRuntime()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.Production.BatchSize = batchSize
			}
			if cmd.Flags().Changed("interval") {
				cfg.Production.Interval = interval
			}
			if cmd.Flags().Changed("pid-file") {
				cfg.Production.PIDFile = pidPath
			}

			if cfg.Production.PIDFile != "" {
				lock := pidfile.New(cfg.Production.PIDFile)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer func() {
					if err := lock.Release(); err != nil {
						logger.Warn("failed to release PID file", "path", lock.Path(), "error", err)
					}
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := runProduction(ctx, cfg, logger, plan, NewStatusTableSink(cmd.OutOrStdout(), cfg.Production.Interval), nil)
			if errors.Is(err, context.Canceled) && summary != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nProduction stopped after %d batches.\n", summary.Ticks)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nProduced %d doughnuts in %d batches, total value %s.\n",
				summary.TotalProduced, summary.Ticks, summary.TotalValue.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&planSpecs, "plan", "p", nil, "Flavor target as flavor=quantity (repeatable)")
	cmd.Flags().IntVar(&batchSize, "batch-size", config.DefaultBatchSize, "Doughnuts per flavor per batch (overrides config)")
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "Time between batches (overrides config)")
	cmd.Flags().StringVar(&pidPath, "pid-file", "", "Refuse to start while another run holds this PID file")

	return cmd
}

// runProduction wires the tracker, mediator and runner for one run. A nil
// clock uses the system clock.
func runProduction(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	plan []production.PlanItem,
	sink services.StatusSink,
	clock shared.Clock,
) (*services.RunSummary, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	tracker, err := production.NewTracker(production.NewDoughnutFactory(clock), cfg.Production.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create production tracker: %w", err)
	}

	m := common.NewMediator()
	if err := setup.NewHandlerRegistry(tracker).RegisterProductionHandlers(m); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	if cfg.Metrics.Enabled {
		stopMetrics, err := enableMetrics(ctx, cfg.Metrics, m, logger)
		if err != nil {
			return nil, err
		}
		defer stopMetrics()
	}

	runner, err := services.NewProductionRunner(m, clock, cfg.Production.Interval)
	if err != nil {
		return nil, err
	}

	ctx = common.WithLogger(ctx, logging.NewRunLogger(logger))
	return runner.Run(ctx, plan, sink)
}

// enableMetrics registers collectors, adds the request middleware and serves
// the registry until the returned stop function is called
func enableMetrics(ctx context.Context, cfg config.MetricsConfig, m common.Mediator, logger *slog.Logger) (func(), error) {
	requestCollector, err := metrics.Enable(nil)
	if err != nil {
		return nil, err
	}
	m.Use(metrics.PrometheusMiddleware(requestCollector))

	serverCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("metrics server listening", "addr", cfg.Addr(), "path", cfg.Path)
		if err := metrics.StartServer(serverCtx, cfg.Addr(), cfg.Path); err != nil {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		cancel()
		<-done
		metrics.Disable()
	}, nil
}
