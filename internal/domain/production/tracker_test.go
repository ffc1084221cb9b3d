package production_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/internal/domain/shared"
	"github.com/andrescamacho/bakery-go/test/helpers"
)

func newTracker(t *testing.T, batchSize int) (*production.Tracker, *helpers.MockDoughnutFactory) {
	t.Helper()
	factory := helpers.NewMockDoughnutFactory()
	tracker, err := production.NewTracker(factory, batchSize)
	require.NoError(t, err)
	return tracker, factory
}

func statusFor(t *testing.T, statuses []production.Status, flavor production.Flavor) production.Status {
	t.Helper()
	for _, s := range statuses {
		if s.Flavor == flavor {
			return s
		}
	}
	t.Fatalf("no status for %s", flavor)
	return production.Status{}
}

func TestNewTracker_RejectsNonPositiveBatchSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		_, err := production.NewTracker(helpers.NewMockDoughnutFactory(), size)

		var batchErr *production.ErrInvalidBatchSize
		require.True(t, errors.As(err, &batchErr), "batch size %d", size)
		assert.Equal(t, size, batchErr.BatchSize)
	}
}

func TestNewTracker_RejectsNilFactory(t *testing.T) {
	_, err := production.NewTracker(nil, 50)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestNewTracker_StartsIdle(t *testing.T) {
	tracker, _ := newTracker(t, 50)

	assert.False(t, tracker.IsRunning())
	assert.Empty(t, tracker.Statuses())
	assert.Equal(t, 50, tracker.BatchSize())
}

func TestTracker_SingleFlavorRun(t *testing.T) {
	// Arrange
	tracker, _ := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorVanilla, 120)})
	require.True(t, tracker.IsRunning())

	// Act + Assert
	expected := []struct {
		produced  int
		remaining int
		running   bool
	}{
		{50, 70, true},
		{100, 20, true},
		{120, 0, false},
	}
	for i, want := range expected {
		statuses := tracker.ProduceBatch()
		require.Len(t, statuses, 1)
		assert.Equal(t, want.produced, statuses[0].ProducedQuantity, "tick %d", i+1)
		assert.Equal(t, want.remaining, statuses[0].Remaining(), "tick %d", i+1)
		assert.Equal(t, want.running, tracker.IsRunning(), "tick %d", i+1)
	}
}

func TestTracker_CompletedFlavorStaysInert(t *testing.T) {
	tracker, factory := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 30),
		production.MustPlanItem(production.FlavorChocolate, 80),
	})

	statuses := tracker.ProduceBatch()
	assert.Equal(t, 30, statusFor(t, statuses, production.FlavorVanilla).ProducedQuantity)
	assert.Equal(t, 50, statusFor(t, statuses, production.FlavorChocolate).ProducedQuantity)
	assert.True(t, tracker.IsRunning())

	statuses = tracker.ProduceBatch()
	assert.Equal(t, 30, statusFor(t, statuses, production.FlavorVanilla).ProducedQuantity)
	assert.Equal(t, 80, statusFor(t, statuses, production.FlavorChocolate).ProducedQuantity)
	assert.False(t, tracker.IsRunning())
	assert.Equal(t, 30, factory.CallsFor(production.FlavorVanilla))
	assert.Equal(t, 80, factory.CallsFor(production.FlavorChocolate))
}

func TestTracker_EmptyPlanStaysIdle(t *testing.T) {
	tracker, factory := newTracker(t, 50)

	tracker.Configure(nil)
	assert.False(t, tracker.IsRunning())

	statuses := tracker.ProduceBatch()
	assert.Empty(t, statuses)
	assert.Zero(t, factory.TotalCalls())
}

func TestTracker_SingleDoughnutCompletesImmediately(t *testing.T) {
	tracker, factory := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorCaramel, 1)})

	statuses := tracker.ProduceBatch()

	require.Len(t, statuses, 1)
	assert.Equal(t, 1, statuses[0].ProducedQuantity)
	assert.Equal(t, 0, statuses[0].Remaining())
	assert.Equal(t, 1, factory.CallsFor(production.FlavorCaramel))
	assert.False(t, tracker.IsRunning())
}

func TestTracker_ProducedNeverDecreasesOrExceedsTarget(t *testing.T) {
	tracker, _ := newTracker(t, 7)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 23),
		production.MustPlanItem(production.FlavorStrawberry, 5),
		production.MustPlanItem(production.FlavorBlueberry, 64),
	})

	previous := map[production.Flavor]int{}
	for i := 0; i < 20; i++ {
		for _, s := range tracker.ProduceBatch() {
			assert.GreaterOrEqual(t, s.ProducedQuantity, previous[s.Flavor])
			assert.LessOrEqual(t, s.ProducedQuantity, s.TargetQuantity)
			previous[s.Flavor] = s.ProducedQuantity
		}
	}
}

func TestTracker_TerminatesWithinCeilOfLargestTarget(t *testing.T) {
	cases := []struct {
		name      string
		batchSize int
		targets   map[production.Flavor]int
	}{
		{"exact multiple", 50, map[production.Flavor]int{production.FlavorVanilla: 100}},
		{"remainder", 50, map[production.Flavor]int{production.FlavorVanilla: 101, production.FlavorCaramel: 3}},
		{"batch of one", 1, map[production.Flavor]int{production.FlavorChocolate: 4, production.FlavorBlueberry: 2}},
		{"batch larger than targets", 1000, map[production.Flavor]int{production.FlavorStrawberry: 999}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracker, _ := newTracker(t, tc.batchSize)
			var plan []production.PlanItem
			largest := 0
			for flavor, target := range tc.targets {
				plan = append(plan, production.MustPlanItem(flavor, target))
				largest = max(largest, target)
			}
			tracker.Configure(plan)

			bound := (largest + tc.batchSize - 1) / tc.batchSize
			ticks := 0
			for tracker.IsRunning() && ticks <= bound {
				statuses := tracker.ProduceBatch()
				ticks++
				if tracker.IsRunning() {
					continue
				}
				for _, s := range statuses {
					assert.Equal(t, s.TargetQuantity, s.ProducedQuantity)
				}
			}

			assert.False(t, tracker.IsRunning())
			assert.Equal(t, bound, ticks)
		})
	}
}

func TestTracker_ProduceBatchAfterCompletionIsNoop(t *testing.T) {
	tracker, factory := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 60),
		production.MustPlanItem(production.FlavorChocolate, 10),
	})
	for tracker.IsRunning() {
		tracker.ProduceBatch()
	}
	final := tracker.Statuses()
	calls := factory.TotalCalls()

	again := tracker.ProduceBatch()

	assert.Equal(t, final, again)
	assert.Equal(t, calls, factory.TotalCalls())
	assert.False(t, tracker.IsRunning())
}

func TestTracker_ConfigureMidRunResetsCounters(t *testing.T) {
	tracker, _ := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 200),
		production.MustPlanItem(production.FlavorCaramel, 200),
	})
	tracker.ProduceBatch()

	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 10),
		production.MustPlanItem(production.FlavorBlueberry, 20),
	})

	statuses := tracker.Statuses()
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.Zero(t, s.ProducedQuantity, "flavor %s carried over progress", s.Flavor)
	}
	assert.Empty(t, tracker.Produced(production.FlavorCaramel))
	assert.True(t, tracker.IsRunning())
}

func TestTracker_RemainderSmallerThanBatchIsClamped(t *testing.T) {
	tracker, factory := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorStrawberry, 70)})
	tracker.ProduceBatch()

	statuses := tracker.ProduceBatch()

	assert.Equal(t, 70, statuses[0].ProducedQuantity)
	assert.Equal(t, 70, factory.CallsFor(production.FlavorStrawberry))
}

func TestTracker_DuplicateFlavorLastWins(t *testing.T) {
	tracker, _ := newTracker(t, 50)

	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorVanilla, 100),
		production.MustPlanItem(production.FlavorVanilla, 5),
	})

	statuses := tracker.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, 5, statuses[0].TargetQuantity)
}

func TestTracker_StatusesFollowFlavorOrder(t *testing.T) {
	tracker, _ := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{
		production.MustPlanItem(production.FlavorBlueberry, 1),
		production.MustPlanItem(production.FlavorVanilla, 1),
		production.MustPlanItem(production.FlavorCaramel, 1),
	})

	statuses := tracker.Statuses()

	require.Len(t, statuses, 3)
	assert.Equal(t, production.FlavorVanilla, statuses[0].Flavor)
	assert.Equal(t, production.FlavorCaramel, statuses[1].Flavor)
	assert.Equal(t, production.FlavorBlueberry, statuses[2].Flavor)
}

func TestTracker_ProducedReturnsCopy(t *testing.T) {
	tracker, _ := newTracker(t, 50)
	tracker.Configure([]production.PlanItem{production.MustPlanItem(production.FlavorVanilla, 3)})
	tracker.ProduceBatch()

	produced := tracker.Produced(production.FlavorVanilla)
	require.Len(t, produced, 3)
	produced[0] = production.Doughnut{}

	assert.Equal(t, production.FlavorVanilla, tracker.Produced(production.FlavorVanilla)[0].Flavor())
	assert.Equal(t, helpers.FixedProductionTime, tracker.Produced(production.FlavorVanilla)[0].ProducedAt())
}
