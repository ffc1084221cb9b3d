package production

import "strings"

// Flavor is one doughnut variety. The set is closed; declaration order is
// the canonical order used when reporting statuses.
type Flavor int

const (
	FlavorVanilla Flavor = iota
	FlavorChocolate
	FlavorStrawberry
	FlavorCaramel
	FlavorBlueberry
)

var flavorNames = map[Flavor]string{
	FlavorVanilla:    "VANILLA",
	FlavorChocolate:  "CHOCOLATE",
	FlavorStrawberry: "STRAWBERRY",
	FlavorCaramel:    "CARAMEL",
	FlavorBlueberry:  "BLUEBERRY",
}

// AllFlavors returns every flavor in declaration order
func AllFlavors() []Flavor {
	return []Flavor{
		FlavorVanilla,
		FlavorChocolate,
		FlavorStrawberry,
		FlavorCaramel,
		FlavorBlueberry,
	}
}

func (f Flavor) String() string {
	if name, ok := flavorNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid reports whether f belongs to the closed flavor set
func (f Flavor) IsValid() bool {
	_, ok := flavorNames[f]
	return ok
}

// ParseFlavor resolves a flavor by name, case-insensitively
func ParseFlavor(name string) (Flavor, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for flavor, flavorName := range flavorNames {
		if flavorName == normalized {
			return flavor, nil
		}
	}
	return 0, &ErrUnknownFlavor{Name: name}
}
