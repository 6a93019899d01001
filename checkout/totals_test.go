package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsHomeCity(t *testing.T) {
	lines := []Line{
		{UnitPrice: 25, Quantity: 2},
		{UnitPrice: 10, Quantity: 1},
	}

	got := ComputeTotals(lines, "Tbilisi")
	assert.Equal(t, 60.0, got.Subtotal)
	assert.Equal(t, 0.0, got.ShippingCost)
	assert.Equal(t, 60.0, got.Total)
}

func TestComputeTotalsOtherCity(t *testing.T) {
	lines := []Line{{UnitPrice: 25, Quantity: 2}}

	got := ComputeTotals(lines, "Batumi")
	assert.Equal(t, 50.0, got.Subtotal)
	assert.Equal(t, FlatShippingFee, got.ShippingCost)
	assert.Equal(t, 57.0, got.Total)
}

func TestComputeTotalsCityComparisonIsForgiving(t *testing.T) {
	got := ComputeTotals([]Line{{UnitPrice: 5, Quantity: 1}}, "  tbilisi ")
	assert.Equal(t, 0.0, got.ShippingCost)
}

func TestComputeTotalsEmptyOrder(t *testing.T) {
	got := ComputeTotals(nil, "Kutaisi")
	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, FlatShippingFee, got.ShippingCost)
	assert.Equal(t, got.Subtotal+got.ShippingCost, got.Total)
}

func TestTotalAlwaysSubtotalPlusShipping(t *testing.T) {
	for _, city := range []string{"Tbilisi", "Batumi", "", "Rustavi"} {
		got := ComputeTotals([]Line{{UnitPrice: 19.99, Quantity: 3}}, city)
		assert.Equal(t, got.Subtotal+got.ShippingCost, got.Total)
	}
}

func TestEffectiveUnitPrice(t *testing.T) {
	sale := 8.0
	assert.Equal(t, 8.0, EffectiveUnitPrice(10, &sale))

	higher := 12.0
	assert.Equal(t, 10.0, EffectiveUnitPrice(10, &higher), "sale price above base is ignored")

	assert.Equal(t, 10.0, EffectiveUnitPrice(10, nil))
}
