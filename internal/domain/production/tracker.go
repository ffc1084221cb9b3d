package production

import (
	"github.com/andrescamacho/bakery-go/internal/domain/shared"
	"github.com/andrescamacho/bakery-go/pkg/utils"
)

// Tracker owns the state of a single production run: targets per flavor,
// the doughnuts produced so far and whether the run is still going.
//
// Invariants:
// - produced count never exceeds target for any flavor
// - running is true iff at least one configured flavor is below target
// - Configure replaces all previous state
//
// Tracker is not safe for concurrent use; callers serialize access.
type Tracker struct {
	factory   Factory
	batchSize int
	targets   map[Flavor]int
	produced  map[Flavor][]Doughnut
	running   bool
}

// NewTracker creates an idle tracker producing at most batchSize doughnuts
// per flavor on every batch. The factory must be non-nil; a nil
// *DoughnutFactory is accepted because it falls back to the system clock.
func NewTracker(factory Factory, batchSize int) (*Tracker, error) {
	if batchSize <= 0 {
		return nil, &ErrInvalidBatchSize{BatchSize: batchSize}
	}
	if factory == nil {
		return nil, shared.NewDomainError("doughnut factory cannot be nil")
	}

	return &Tracker{
		factory:   factory,
		batchSize: batchSize,
		targets:   make(map[Flavor]int),
		produced:  make(map[Flavor][]Doughnut),
	}, nil
}

// BatchSize returns the fixed per-flavor batch size
func (t *Tracker) BatchSize() int { return t.batchSize }

// IsRunning reports whether any configured flavor is still below target
func (t *Tracker) IsRunning() bool { return t.running }

// Configure replaces the plan and resets every counter. A later item for the
// same flavor overrides an earlier one. An empty plan leaves the tracker idle.
func (t *Tracker) Configure(plan []PlanItem) {
	t.targets = make(map[Flavor]int, len(plan))
	t.produced = make(map[Flavor][]Doughnut, len(plan))

	for _, item := range plan {
		t.targets[item.Flavor()] = item.TargetQuantity()
		t.produced[item.Flavor()] = nil
	}

	t.running = len(t.targets) > 0
}

// ProduceBatch makes up to one batch for every configured flavor and returns
// the resulting statuses. Calling it on an idle tracker changes nothing.
func (t *Tracker) ProduceBatch() []Status {
	if !t.running {
		return t.Statuses()
	}

	for flavor, target := range t.targets {
		remaining := target - len(t.produced[flavor])
		toMake := utils.Min(t.batchSize, utils.Max(0, remaining))

		for i := 0; i < toMake; i++ {
			t.produced[flavor] = append(t.produced[flavor], t.factory.Create(flavor))
		}
	}

	if t.allTargetsMet() {
		t.running = false
	}

	return t.Statuses()
}

// Statuses returns one status per configured flavor, in flavor order
func (t *Tracker) Statuses() []Status {
	statuses := make([]Status, 0, len(t.targets))
	for _, flavor := range AllFlavors() {
		target, ok := t.targets[flavor]
		if !ok {
			continue
		}
		statuses = append(statuses, Status{
			Flavor:           flavor,
			TargetQuantity:   target,
			ProducedQuantity: len(t.produced[flavor]),
		})
	}
	return statuses
}

// Produced returns a copy of the doughnuts made so far for a flavor
func (t *Tracker) Produced(flavor Flavor) []Doughnut {
	out := make([]Doughnut, len(t.produced[flavor]))
	copy(out, t.produced[flavor])
	return out
}

func (t *Tracker) allTargetsMet() bool {
	for _, status := range t.Statuses() {
		if !status.IsComplete() {
			return false
		}
	}
	return true
}
