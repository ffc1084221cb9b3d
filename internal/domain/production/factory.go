package production

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/domain/shared"
)

// Factory creates one doughnut of the requested flavor
type Factory interface {
	Create(flavor Flavor) Doughnut
}

var flavorPrices = map[Flavor]decimal.Decimal{
	FlavorVanilla:    decimal.NewFromInt(18),
	FlavorChocolate:  decimal.NewFromInt(20),
	FlavorStrawberry: decimal.NewFromInt(19),
	FlavorCaramel:    decimal.NewFromInt(21),
	FlavorBlueberry:  decimal.NewFromInt(22),
}

// PriceOf returns the unit price of a flavor, or zero for an unmapped flavor
func PriceOf(flavor Flavor) decimal.Decimal {
	if price, ok := flavorPrices[flavor]; ok {
		return price
	}
	return decimal.Zero
}

// DoughnutFactory prices doughnuts from the fixed flavor table and stamps
// them with the clock's current time. A nil or zero factory uses the system clock.
type DoughnutFactory struct {
	clock shared.Clock
}

// NewDoughnutFactory creates a factory; a nil clock falls back to the system clock
func NewDoughnutFactory(clock shared.Clock) *DoughnutFactory {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &DoughnutFactory{clock: clock}
}

// Create implements Factory
func (f *DoughnutFactory) Create(flavor Flavor) Doughnut {
	return NewDoughnut(flavor, PriceOf(flavor), f.now())
}

func (f *DoughnutFactory) now() time.Time {
	if f == nil || f.clock == nil {
		return time.Now().UTC()
	}
	return f.clock.Now()
}
