package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/test/helpers"
)

// maxTicks bounds "until the tracker stops" loops
const maxTicks = 1000

type productionTrackerContext struct {
	factory    *helpers.MockDoughnutFactory
	tracker    *production.Tracker
	trackerErr error
	snapshot   []production.Status
	ticks      int
}

func (ctx *productionTrackerContext) reset() {
	ctx.factory = helpers.NewMockDoughnutFactory()
	ctx.tracker = nil
	ctx.trackerErr = nil
	ctx.snapshot = nil
	ctx.ticks = 0
}

// InitializeProductionTrackerScenario registers the tracker steps
func InitializeProductionTrackerScenario(sc *godog.ScenarioContext) {
	ptc := &productionTrackerContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		ptc.reset()
		return ctx, nil
	})

	sc.Step(`^a production tracker with batch size (-?\d+)$`, ptc.aProductionTrackerWithBatchSize)
	sc.Step(`^I configure a plan:$`, ptc.iConfigureAPlan)
	sc.Step(`^I configure an empty plan$`, ptc.iConfigureAnEmptyPlan)
	sc.Step(`^I produce a batch$`, ptc.iProduceABatch)
	sc.Step(`^I produce (\d+) batches$`, ptc.iProduceBatches)
	sc.Step(`^I produce batches until the tracker stops$`, ptc.iProduceBatchesUntilTheTrackerStops)
	sc.Step(`^the tracker should be running$`, ptc.theTrackerShouldBeRunning)
	sc.Step(`^the tracker should not be running$`, ptc.theTrackerShouldNotBeRunning)
	sc.Step(`^"([^"]*)" should have (\d+) produced of (\d+)$`, ptc.flavorShouldHaveProducedOf)
	sc.Step(`^"([^"]*)" should have (\d+) remaining$`, ptc.flavorShouldHaveRemaining)
	sc.Step(`^the factory should have created (\d+) doughnuts$`, ptc.theFactoryShouldHaveCreated)
	sc.Step(`^the snapshot should list only "([^"]*)"$`, ptc.theSnapshotShouldListOnly)
	sc.Step(`^the snapshot should be empty$`, ptc.theSnapshotShouldBeEmpty)
	sc.Step(`^the snapshot order should be "([^"]*)"$`, ptc.theSnapshotOrderShouldBe)
	sc.Step(`^the tracker should have needed (\d+) batches$`, ptc.theTrackerShouldHaveNeeded)
	sc.Step(`^the tracker construction should fail with an invalid batch size$`, ptc.theTrackerConstructionShouldFail)
}

func (ctx *productionTrackerContext) aProductionTrackerWithBatchSize(batchSize int) error {
	ctx.tracker, ctx.trackerErr = production.NewTracker(ctx.factory, batchSize)
	return nil
}

func (ctx *productionTrackerContext) requireTracker() error {
	if ctx.tracker == nil {
		return fmt.Errorf("no tracker: %v", ctx.trackerErr)
	}
	return nil
}

func (ctx *productionTrackerContext) iConfigureAPlan(table *godog.Table) error {
	if err := ctx.requireTracker(); err != nil {
		return err
	}
	plan, err := planFromTable(table)
	if err != nil {
		return err
	}
	ctx.tracker.Configure(plan)
	ctx.snapshot = ctx.tracker.Statuses()
	ctx.ticks = 0
	return nil
}

func (ctx *productionTrackerContext) iConfigureAnEmptyPlan() error {
	if err := ctx.requireTracker(); err != nil {
		return err
	}
	ctx.tracker.Configure(nil)
	ctx.snapshot = ctx.tracker.Statuses()
	return nil
}

func (ctx *productionTrackerContext) iProduceABatch() error {
	if err := ctx.requireTracker(); err != nil {
		return err
	}
	ctx.snapshot = ctx.tracker.ProduceBatch()
	ctx.ticks++
	return nil
}

func (ctx *productionTrackerContext) iProduceBatches(n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.iProduceABatch(); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *productionTrackerContext) iProduceBatchesUntilTheTrackerStops() error {
	if err := ctx.requireTracker(); err != nil {
		return err
	}
	for ctx.tracker.IsRunning() {
		if ctx.ticks >= maxTicks {
			return fmt.Errorf("tracker still running after %d batches", maxTicks)
		}
		if err := ctx.iProduceABatch(); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *productionTrackerContext) theTrackerShouldBeRunning() error {
	if !ctx.tracker.IsRunning() {
		return fmt.Errorf("expected tracker to be running")
	}
	return nil
}

func (ctx *productionTrackerContext) theTrackerShouldNotBeRunning() error {
	if ctx.tracker.IsRunning() {
		return fmt.Errorf("expected tracker to be idle")
	}
	return nil
}

func (ctx *productionTrackerContext) statusFor(name string) (production.Status, error) {
	flavor, err := production.ParseFlavor(name)
	if err != nil {
		return production.Status{}, err
	}
	for _, status := range ctx.snapshot {
		if status.Flavor == flavor {
			return status, nil
		}
	}
	return production.Status{}, fmt.Errorf("flavor %s not in snapshot %v", flavor, ctx.snapshot)
}

func (ctx *productionTrackerContext) flavorShouldHaveProducedOf(name string, produced, target int) error {
	status, err := ctx.statusFor(name)
	if err != nil {
		return err
	}
	if status.ProducedQuantity != produced || status.TargetQuantity != target {
		return fmt.Errorf("expected %s %d/%d, got %d/%d",
			name, produced, target, status.ProducedQuantity, status.TargetQuantity)
	}
	return nil
}

func (ctx *productionTrackerContext) flavorShouldHaveRemaining(name string, remaining int) error {
	status, err := ctx.statusFor(name)
	if err != nil {
		return err
	}
	if status.Remaining() != remaining {
		return fmt.Errorf("expected %s to have %d remaining, got %d", name, remaining, status.Remaining())
	}
	return nil
}

func (ctx *productionTrackerContext) theFactoryShouldHaveCreated(n int) error {
	if got := ctx.factory.TotalCalls(); got != n {
		return fmt.Errorf("expected %d doughnuts created, got %d", n, got)
	}
	return nil
}

func (ctx *productionTrackerContext) theSnapshotShouldListOnly(name string) error {
	if len(ctx.snapshot) != 1 {
		return fmt.Errorf("expected exactly one status, got %v", ctx.snapshot)
	}
	_, err := ctx.statusFor(name)
	return err
}

func (ctx *productionTrackerContext) theSnapshotShouldBeEmpty() error {
	if len(ctx.snapshot) != 0 {
		return fmt.Errorf("expected empty snapshot, got %v", ctx.snapshot)
	}
	return nil
}

func (ctx *productionTrackerContext) theSnapshotOrderShouldBe(order string) error {
	names := make([]string, 0, len(ctx.snapshot))
	for _, status := range ctx.snapshot {
		names = append(names, status.Flavor.String())
	}
	if got := strings.Join(names, ","); got != order {
		return fmt.Errorf("expected order %s, got %s", order, got)
	}
	return nil
}

func (ctx *productionTrackerContext) theTrackerShouldHaveNeeded(ticks int) error {
	if ctx.ticks != ticks {
		return fmt.Errorf("expected %d batches, got %d", ticks, ctx.ticks)
	}
	return nil
}

func (ctx *productionTrackerContext) theTrackerConstructionShouldFail() error {
	var invalid *production.ErrInvalidBatchSize
	if !errors.As(ctx.trackerErr, &invalid) {
		return fmt.Errorf("expected ErrInvalidBatchSize, got %v", ctx.trackerErr)
	}
	return nil
}

// planFromTable reads a | flavor | quantity | table, skipping the header row
func planFromTable(table *godog.Table) ([]production.PlanItem, error) {
	plan := make([]production.PlanItem, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) < 2 {
			return nil, fmt.Errorf("row %d: expected flavor and quantity", i)
		}

		flavor, err := production.ParseFlavor(row.Cells[0].Value)
		if err != nil {
			return nil, err
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(row.Cells[1].Value))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		item, err := production.NewPlanItem(flavor, quantity)
		if err != nil {
			return nil, err
		}
		plan = append(plan, item)
	}
	return plan, nil
}
