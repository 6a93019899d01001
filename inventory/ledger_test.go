package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

var testTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func simpleProduct(stock int) *models.Product {
	return &models.Product{
		Name:  "Mug",
		Price: 15,
		Stock: stock,
	}
}

func variantProduct() *models.Product {
	return &models.Product{
		Name:        "T-Shirt",
		HasVariants: true,
		Variants: []models.ProductVariant{
			{ID: "v-s", Name: "S", Price: 30, Stock: 5, IsActive: true},
			{ID: "v-m", Name: "M", Price: 32, Stock: 7, IsActive: true},
		},
	}
}

func TestSetProductStock(t *testing.T) {
	p := simpleProduct(3)

	entry, err := SetProductStock(p, 10, "restock", "spring delivery", testTime)
	require.NoError(t, err)

	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, 10, entry.Quantity)
	assert.Equal(t, "restock", entry.Reason)
	assert.Equal(t, "spring delivery", entry.Note)
	require.Len(t, p.StockHistory, 1)
	assert.Equal(t, entry, p.StockHistory[0])
}

func TestSetProductStockRejectsNegative(t *testing.T) {
	p := simpleProduct(5)

	_, err := SetProductStock(p, -1, "test", "", testTime)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// No partial application: stock untouched, nothing appended.
	assert.Equal(t, 5, p.Stock)
	assert.Empty(t, p.StockHistory)
}

func TestSetProductStockRejectsVariantProduct(t *testing.T) {
	p := variantProduct()

	_, err := SetProductStock(p, 4, "restock", "", testTime)
	assert.ErrorIs(t, err, ErrDerivedStock)
}

func TestSetVariantStockRecomputesAggregate(t *testing.T) {
	p := variantProduct()

	_, err := SetVariantStock(p, "v-s", 0, "sold out", "", testTime)
	require.NoError(t, err)

	assert.Equal(t, 7, p.Stock, "parent stock is the sum over variants")
	require.Len(t, p.Variants[0].StockHistory, 1)
	assert.Equal(t, 0, p.Variants[0].StockHistory[0].Quantity)
	assert.Empty(t, p.Variants[1].StockHistory)
}

func TestSetVariantStockAggregateConsistency(t *testing.T) {
	p := variantProduct()

	for _, q := range []int{4, 9, 1, 0, 12} {
		_, err := SetVariantStock(p, "v-m", q, "count", "", testTime)
		require.NoError(t, err)

		sum := 0
		for _, v := range p.Variants {
			sum += v.Stock
		}
		assert.Equal(t, sum, p.Stock)
	}
}

func TestSetVariantStockErrors(t *testing.T) {
	p := variantProduct()

	_, err := SetVariantStock(p, "v-s", -3, "test", "", testTime)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 5, p.Variants[0].Stock)

	_, err = SetVariantStock(p, "missing", 1, "test", "", testTime)
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestRemoveVariantWithSiblings(t *testing.T) {
	p := variantProduct()

	err := RemoveVariant(p, "v-s", testTime)
	require.NoError(t, err)

	assert.True(t, p.HasVariants)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, float64(32), p.Price)
}

func TestRemoveLastVariantDemotesProduct(t *testing.T) {
	p := variantProduct()

	require.NoError(t, RemoveVariant(p, "v-s", testTime))
	require.NoError(t, RemoveVariant(p, "v-m", testTime))

	assert.False(t, p.HasVariants)
	assert.Empty(t, p.Variants)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, float64(0), p.Price)
	assert.Nil(t, p.SalePrice)
}

func TestRemoveVariantNotFound(t *testing.T) {
	p := variantProduct()
	assert.ErrorIs(t, RemoveVariant(p, "missing", testTime), ErrVariantNotFound)
	assert.Len(t, p.Variants, 2)
}

func TestReplay(t *testing.T) {
	assert.Equal(t, 0, Replay(nil))

	history := []models.StockEntry{
		{Quantity: 10, Reason: "initial"},
		{Quantity: 4, Reason: "sale"},
		{Quantity: 25, Reason: "restock"},
	}
	assert.Equal(t, 25, Replay(history))
}

func TestStockFor(t *testing.T) {
	p := variantProduct()

	stock, err := StockFor(p, "v-m")
	require.NoError(t, err)
	assert.Equal(t, 7, stock)

	simple := simpleProduct(11)
	stock, err = StockFor(simple, "")
	require.NoError(t, err)
	assert.Equal(t, 11, stock)

	_, err = StockFor(p, "missing")
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestSalePriceDrivesAggregatePrice(t *testing.T) {
	p := variantProduct()
	sale := 20.0
	p.Variants[1].SalePrice = &sale
	p.SyncAggregates()

	assert.Equal(t, 20.0, p.Price, "aggregate price is the minimum effective price")
}
