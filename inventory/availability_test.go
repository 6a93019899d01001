package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableStockNoDraftLines(t *testing.T) {
	assert.Equal(t, 10, AvailableStock(10, "p1", "", nil, -1))
}

func TestAvailableStockSubtractsSameSKU(t *testing.T) {
	draft := []DraftLine{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p1", Quantity: 3},
	}

	// Editing line 1: only line 0's claim counts.
	assert.Equal(t, 6, AvailableStock(10, "p1", "", draft, 1))

	// A fresh line subtracts both existing claims.
	assert.Equal(t, 3, AvailableStock(10, "p1", "", draft, -1))
}

func TestAvailableStockDistinctSKUs(t *testing.T) {
	draft := []DraftLine{
		{ProductID: "p1", VariantID: "v1", Quantity: 5},
		{ProductID: "p2", Quantity: 2},
	}

	// A simple line and a variant line of the same product are distinct.
	assert.Equal(t, 10, AvailableStock(10, "p1", "", draft, -1))
	assert.Equal(t, 5, AvailableStock(10, "p1", "v1", draft, -1))
	assert.Equal(t, 10, AvailableStock(10, "p1", "v2", draft, -1))
}

func TestAvailableStockClampsToZero(t *testing.T) {
	draft := []DraftLine{{ProductID: "p1", Quantity: 50}}
	assert.Equal(t, 0, AvailableStock(10, "p1", "", draft, -1))
}

func TestAvailableStockZeroRawStock(t *testing.T) {
	assert.Equal(t, 0, AvailableStock(0, "p1", "", nil, -1))
	assert.Equal(t, 0, AvailableStock(0, "p1", "", []DraftLine{{ProductID: "p2", Quantity: 1}}, -1))
}

func TestAvailableStockIgnoresNonPositiveQuantities(t *testing.T) {
	draft := []DraftLine{
		{ProductID: "p1", Quantity: -5},
		{ProductID: "p1", Quantity: 0},
		{ProductID: "p1", Quantity: 2},
	}

	got := AvailableStock(10, "p1", "", draft, -1)
	assert.Equal(t, 8, got)
	assert.LessOrEqual(t, got, 10, "availability never exceeds raw stock")
}

func TestAvailableStockMonotonicity(t *testing.T) {
	var draft []DraftLine
	prev := 20
	for i := 0; i < 10; i++ {
		draft = append(draft, DraftLine{ProductID: "p1", Quantity: 3})
		got := AvailableStock(20, "p1", "", draft, -1)
		assert.LessOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 20)
		assert.GreaterOrEqual(t, got, 0)
		prev = got
	}
}
