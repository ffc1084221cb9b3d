package production

import "fmt"

// ErrInvalidQuantity indicates a plan item was built with a non-positive target
type ErrInvalidQuantity struct {
	Flavor   Flavor
	Quantity int
}

func (e *ErrInvalidQuantity) Error() string {
	return fmt.Sprintf("target quantity for %s must be positive, got %d", e.Flavor, e.Quantity)
}

// ErrInvalidBatchSize indicates a tracker was built with a non-positive batch size
type ErrInvalidBatchSize struct {
	BatchSize int
}

func (e *ErrInvalidBatchSize) Error() string {
	return fmt.Sprintf("batch size must be positive, got %d", e.BatchSize)
}

// ErrUnknownFlavor indicates a flavor name outside the closed set
type ErrUnknownFlavor struct {
	Name string
}

func (e *ErrUnknownFlavor) Error() string {
	return fmt.Sprintf("unknown flavor: %q", e.Name)
}
