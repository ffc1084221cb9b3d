package production

import (
	"fmt"

	"github.com/andrescamacho/bakery-go/pkg/utils"
)

// Status is a read-only view of one flavor's progress at a point in time
type Status struct {
	Flavor           Flavor
	TargetQuantity   int
	ProducedQuantity int
}

// Remaining returns max(0, target - produced)
func (s Status) Remaining() int {
	return utils.Max(0, s.TargetQuantity-s.ProducedQuantity)
}

// IsComplete returns true once the flavor's target has been reached
func (s Status) IsComplete() bool {
	return s.ProducedQuantity >= s.TargetQuantity
}

func (s Status) String() string {
	return fmt.Sprintf("%s: %d/%d (remaining %d)",
		s.Flavor, s.ProducedQuantity, s.TargetQuantity, s.Remaining())
}
