package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	sale := 18.0
	variants := []ProductVariant{
		{ID: "a", Price: 20, SalePrice: &sale, Stock: 3},
		{ID: "b", Price: 25, Stock: 0},
		{ID: "c", Price: 22, Stock: 4},
	}

	s := Summarize(variants)
	assert.Equal(t, 7, s.TotalStock)
	assert.Equal(t, 18.0, s.MinPrice, "sale price counts as the effective minimum")
	assert.Equal(t, 25.0, s.MaxPrice)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalStock)
	assert.Equal(t, 0.0, s.MinPrice)
	assert.Equal(t, 0.0, s.MaxPrice)
}

func TestSyncAggregatesNoopForSimpleProduct(t *testing.T) {
	p := Product{Price: 10, Stock: 5}
	p.SyncAggregates()
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, 5, p.Stock)
}

func TestProductValidationCoversVariants(t *testing.T) {
	validate := validator.New()

	p := Product{
		Name:     "T-Shirt",
		Category: "apparel",
		Variants: []ProductVariant{
			{Name: "S", Price: 30, Stock: -5},
		},
	}
	require.Error(t, validate.Struct(&p), "negative variant stock must fail validation")

	p.Variants[0].Stock = 5
	assert.NoError(t, validate.Struct(&p))

	p.Variants[0].Name = ""
	assert.Error(t, validate.Struct(&p), "variant name is required")
}

func TestVariantEffectivePrice(t *testing.T) {
	lower := 8.0
	higher := 15.0

	assert.Equal(t, 8.0, ProductVariant{Price: 10, SalePrice: &lower}.EffectivePrice())
	assert.Equal(t, 10.0, ProductVariant{Price: 10, SalePrice: &higher}.EffectivePrice(), "sale price must be below base price to apply")
	assert.Equal(t, 10.0, ProductVariant{Price: 10}.EffectivePrice())
}
