package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/application/production/services"
	"github.com/andrescamacho/bakery-go/internal/application/setup"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/internal/domain/shared"
	"github.com/andrescamacho/bakery-go/test/helpers"
)

type productionRunnerContext struct {
	clock       *shared.MockClock
	runner      *services.ProductionRunner
	sink        *helpers.MockStatusSink
	cancelAfter int
	summary     *services.RunSummary
	runErr      error
}

func (ctx *productionRunnerContext) reset() {
	ctx.clock = shared.NewMockClock(helpers.FixedProductionTime)
	ctx.runner = nil
	ctx.sink = helpers.NewMockStatusSink()
	ctx.cancelAfter = 0
	ctx.summary = nil
	ctx.runErr = nil
}

// InitializeProductionRunnerScenario registers the runner steps
func InitializeProductionRunnerScenario(sc *godog.ScenarioContext) {
	prc := &productionRunnerContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		prc.reset()
		return ctx, nil
	})

	sc.Step(`^a production runner with batch size (\d+) and interval "([^"]*)"$`, prc.aProductionRunner)
	sc.Step(`^the run is cancelled after (\d+) status updates$`, prc.theRunIsCancelledAfter)
	sc.Step(`^I run the plan:$`, prc.iRunThePlan)
	sc.Step(`^the run should complete after (\d+) batches$`, prc.theRunShouldCompleteAfter)
	sc.Step(`^the run should have been interrupted after (\d+) batches$`, prc.theRunShouldHaveBeenInterruptedAfter)
	sc.Step(`^(\d+) status updates should have been published$`, prc.statusUpdatesShouldHaveBeenPublished)
	sc.Step(`^the run should have produced (\d+) doughnuts worth "([^"]*)"$`, prc.theRunShouldHaveProduced)
	sc.Step(`^the clock should have waited (\d+) times$`, prc.theClockShouldHaveWaited)
}

func (ctx *productionRunnerContext) aProductionRunner(batchSize int, interval string) error {
	period, err := time.ParseDuration(interval)
	if err != nil {
		return err
	}

	tracker, err := production.NewTracker(production.NewDoughnutFactory(ctx.clock), batchSize)
	if err != nil {
		return err
	}

	m := common.NewMediator()
	if err := setup.NewHandlerRegistry(tracker).RegisterProductionHandlers(m); err != nil {
		return err
	}

	ctx.runner, err = services.NewProductionRunner(m, ctx.clock, period)
	return err
}

func (ctx *productionRunnerContext) theRunIsCancelledAfter(n int) error {
	ctx.cancelAfter = n
	return nil
}

func (ctx *productionRunnerContext) iRunThePlan(table *godog.Table) error {
	plan, err := planFromTable(table)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if ctx.cancelAfter > 0 {
		ctx.sink.OnPublish = func(services.StatusUpdate) {
			if len(ctx.sink.Updates()) >= ctx.cancelAfter {
				cancel()
			}
		}
	}

	ctx.summary, ctx.runErr = ctx.runner.Run(runCtx, plan, ctx.sink)
	return nil
}

func (ctx *productionRunnerContext) theRunShouldCompleteAfter(ticks int) error {
	if ctx.runErr != nil {
		return fmt.Errorf("run failed: %w", ctx.runErr)
	}
	if ctx.summary.Ticks != ticks {
		return fmt.Errorf("expected %d batches, got %d", ticks, ctx.summary.Ticks)
	}
	if last, ok := ctx.sink.Last(); !ok || last.Running {
		return fmt.Errorf("last published update missing or still running")
	}
	return nil
}

func (ctx *productionRunnerContext) theRunShouldHaveBeenInterruptedAfter(ticks int) error {
	if !errors.Is(ctx.runErr, context.Canceled) {
		return fmt.Errorf("expected context.Canceled, got %v", ctx.runErr)
	}
	if ctx.summary == nil || ctx.summary.Ticks != ticks {
		return fmt.Errorf("expected partial summary with %d batches, got %+v", ticks, ctx.summary)
	}
	if ctx.summary.Completed {
		return fmt.Errorf("interrupted run reported completion")
	}
	return nil
}

func (ctx *productionRunnerContext) statusUpdatesShouldHaveBeenPublished(n int) error {
	if got := len(ctx.sink.Updates()); got != n {
		return fmt.Errorf("expected %d status updates, got %d", n, got)
	}
	return nil
}

func (ctx *productionRunnerContext) theRunShouldHaveProduced(total int, value string) error {
	expected, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	if ctx.summary.TotalProduced != total {
		return fmt.Errorf("expected %d doughnuts, got %d", total, ctx.summary.TotalProduced)
	}
	if !ctx.summary.TotalValue.Equal(expected) {
		return fmt.Errorf("expected value %s, got %s", expected, ctx.summary.TotalValue)
	}
	return nil
}

func (ctx *productionRunnerContext) theClockShouldHaveWaited(n int) error {
	if got := len(ctx.clock.Sleeps()); got != n {
		return fmt.Errorf("expected %d waits, got %d", n, got)
	}
	return nil
}
