package production

// PlanItem is one (flavor, target quantity) entry of a production plan
type PlanItem struct {
	flavor         Flavor
	targetQuantity int
}

// NewPlanItem validates that the target quantity is strictly positive
func NewPlanItem(flavor Flavor, targetQuantity int) (PlanItem, error) {
	if targetQuantity <= 0 {
		return PlanItem{}, &ErrInvalidQuantity{Flavor: flavor, Quantity: targetQuantity}
	}
	return PlanItem{flavor: flavor, targetQuantity: targetQuantity}, nil
}

// MustPlanItem is NewPlanItem that panics on an invalid quantity
func MustPlanItem(flavor Flavor, targetQuantity int) PlanItem {
	item, err := NewPlanItem(flavor, targetQuantity)
	if err != nil {
		panic(err)
	}
	return item
}

func (p PlanItem) Flavor() Flavor      { return p.flavor }
func (p PlanItem) TargetQuantity() int { return p.targetQuantity }
