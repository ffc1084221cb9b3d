package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/adapters/metrics"
	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/application/production/commands"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/internal/domain/shared"
)

// StatusUpdate is what the runner hands to the presentation layer after every tick.
// Tick 0 is the freshly configured plan.
type StatusUpdate struct {
	RunID      string
	Tick       int
	Statuses   []production.Status
	Running    bool
	Produced   map[production.Flavor]int
	BatchValue decimal.Decimal
}

// StatusSink receives status updates; implementations diff them against their own view
type StatusSink interface {
	Publish(ctx context.Context, update StatusUpdate)
}

// RunSummary describes a finished (or interrupted) production run
type RunSummary struct {
	RunID         string
	Ticks         int
	TotalProduced int
	TotalValue    decimal.Decimal
	Statuses      []production.Status
	Duration      time.Duration
	Completed     bool
}

// ProductionRunner drives a production run: it configures the plan once and
// then produces one batch per interval until every target is met.
// A runner must not be used from more than one goroutine at a time.
type ProductionRunner struct {
	mediator common.Mediator
	clock    shared.Clock
	interval time.Duration
}

// NewProductionRunner creates a new production runner
func NewProductionRunner(mediator common.Mediator, clock shared.Clock, interval time.Duration) (*ProductionRunner, error) {
	if mediator == nil {
		return nil, fmt.Errorf("mediator cannot be nil")
	}
	if interval <= 0 {
		return nil, shared.NewValidationError("interval", fmt.Sprintf("must be positive, got %s", interval))
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &ProductionRunner{
		mediator: mediator,
		clock:    clock,
		interval: interval,
	}, nil
}

// Run executes the plan to completion. It returns ctx.Err() with a partial
// summary if the context ends between ticks.
func (r *ProductionRunner) Run(ctx context.Context, plan []production.PlanItem, sink StatusSink) (*RunSummary, error) {
	logger := common.LoggerFromContext(ctx)
	if sink == nil {
		sink = noopSink{}
	}

	resp, err := r.mediator.Send(ctx, &commands.StartProductionCommand{Plan: plan})
	if err != nil {
		return nil, fmt.Errorf("failed to start production: %w", err)
	}
	started, ok := resp.(*commands.StartProductionResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", resp)
	}

	startedAt := r.clock.Now()
	summary := &RunSummary{
		RunID:      started.RunID,
		TotalValue: decimal.Zero,
		Statuses:   started.Statuses,
	}

	sink.Publish(ctx, StatusUpdate{
		RunID:      started.RunID,
		Statuses:   started.Statuses,
		Running:    started.Running,
		Produced:   map[production.Flavor]int{},
		BatchValue: decimal.Zero,
	})

	running := started.Running
	for running {
		if err := r.wait(ctx); err != nil {
			summary.Duration = r.clock.Now().Sub(startedAt)
			logger.Log("WARNING", "Production run interrupted", map[string]interface{}{
				"run_id": summary.RunID,
				"ticks":  summary.Ticks,
				"reason": err.Error(),
			})
			return summary, err
		}

		resp, err := r.mediator.Send(ctx, &commands.ProduceBatchCommand{RunID: started.RunID})
		if err != nil {
			return summary, fmt.Errorf("failed to produce batch %d: %w", summary.Ticks+1, err)
		}
		batch, ok := resp.(*commands.ProduceBatchResponse)
		if !ok {
			return summary, fmt.Errorf("unexpected response type %T", resp)
		}

		summary.Ticks++
		summary.TotalProduced += batch.TotalProduced()
		summary.TotalValue = summary.TotalValue.Add(batch.BatchValue)
		summary.Statuses = batch.Statuses
		running = batch.Running

		sink.Publish(ctx, StatusUpdate{
			RunID:      started.RunID,
			Tick:       summary.Ticks,
			Statuses:   batch.Statuses,
			Running:    batch.Running,
			Produced:   batch.Produced,
			BatchValue: batch.BatchValue,
		})
	}

	summary.Duration = r.clock.Now().Sub(startedAt)
	summary.Completed = started.Running

	if summary.Completed {
		metrics.RecordRunCompletion(summary.Ticks, summary.Duration)
		logger.Log("INFO", "Production plan completed", map[string]interface{}{
			"run_id":         summary.RunID,
			"ticks":          summary.Ticks,
			"total_produced": summary.TotalProduced,
			"total_value":    summary.TotalValue.String(),
			"duration":       summary.Duration.String(),
		})
	}

	return summary, nil
}

// wait sleeps for one interval on the runner's clock, returning early if ctx ends
func (r *ProductionRunner) wait(ctx context.Context) error {
	return r.clock.Sleep(ctx, r.interval)
}

type noopSink struct{}

func (noopSink) Publish(context.Context, StatusUpdate) {}
