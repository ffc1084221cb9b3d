package production_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

func TestNewPlanItem_Valid(t *testing.T) {
	item, err := production.NewPlanItem(production.FlavorCaramel, 12)

	require.NoError(t, err)
	assert.Equal(t, production.FlavorCaramel, item.Flavor())
	assert.Equal(t, 12, item.TargetQuantity())
}

func TestNewPlanItem_RejectsNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		_, err := production.NewPlanItem(production.FlavorVanilla, qty)

		var qtyErr *production.ErrInvalidQuantity
		require.True(t, errors.As(err, &qtyErr))
		assert.Equal(t, qty, qtyErr.Quantity)
		assert.Contains(t, err.Error(), "VANILLA")
	}
}

func TestMustPlanItem_PanicsOnInvalidQuantity(t *testing.T) {
	assert.Panics(t, func() {
		production.MustPlanItem(production.FlavorVanilla, 0)
	})
}

func TestStatus_Remaining(t *testing.T) {
	assert.Equal(t, 70, production.Status{TargetQuantity: 120, ProducedQuantity: 50}.Remaining())
	assert.Equal(t, 0, production.Status{TargetQuantity: 10, ProducedQuantity: 10}.Remaining())
	assert.Equal(t, 0, production.Status{TargetQuantity: 10, ProducedQuantity: 12}.Remaining())
}

func TestParseFlavor(t *testing.T) {
	flavor, err := production.ParseFlavor(" chocolate ")
	require.NoError(t, err)
	assert.Equal(t, production.FlavorChocolate, flavor)

	_, err = production.ParseFlavor("pistachio")
	var unknown *production.ErrUnknownFlavor
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "pistachio", unknown.Name)
}

func TestAllFlavors_DeclarationOrder(t *testing.T) {
	names := make([]string, 0)
	for _, f := range production.AllFlavors() {
		assert.True(t, f.IsValid())
		names = append(names, f.String())
	}

	assert.Equal(t, []string{"VANILLA", "CHOCOLATE", "STRAWBERRY", "CARAMEL", "BLUEBERRY"}, names)
	assert.False(t, production.Flavor(99).IsValid())
	assert.Equal(t, "UNKNOWN", production.Flavor(99).String())
}

func TestStatus_IsComplete(t *testing.T) {
	assert.False(t, production.Status{TargetQuantity: 10, ProducedQuantity: 9}.IsComplete())
	assert.True(t, production.Status{TargetQuantity: 10, ProducedQuantity: 10}.IsComplete())
}
