package production

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doughnut is an immutable produced item
type Doughnut struct {
	flavor     Flavor
	price      decimal.Decimal
	producedAt time.Time
}

// NewDoughnut creates a doughnut value
func NewDoughnut(flavor Flavor, price decimal.Decimal, producedAt time.Time) Doughnut {
	return Doughnut{
		flavor:     flavor,
		price:      price,
		producedAt: producedAt,
	}
}

func (d Doughnut) Flavor() Flavor         { return d.flavor }
func (d Doughnut) Price() decimal.Decimal { return d.price }
func (d Doughnut) ProducedAt() time.Time  { return d.producedAt }
