package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockEntry records the result of a single stock mutation. Entries are
// append-only: Quantity is the absolute quantity after the change, not a delta.
type StockEntry struct {
	Quantity  int       `bson:"quantity" json:"quantity"`
	Reason    string    `bson:"reason" json:"reason"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type ProductVariant struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name" validate:"required"`
	Price        float64      `bson:"price" json:"price" validate:"gte=0"`
	SalePrice    *float64     `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	Stock        int          `bson:"stock" json:"stock" validate:"gte=0"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	StockHistory []StockEntry `bson:"stockHistory" json:"stockHistory"`
}

// EffectivePrice is the price a buyer actually pays: the sale price when one
// is set and strictly lower than the base price.
func (v ProductVariant) EffectivePrice() float64 {
	if v.SalePrice != nil && *v.SalePrice < v.Price {
		return *v.SalePrice
	}
	return v.Price
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description" json:"description"`
	Category      string             `bson:"category" json:"category" validate:"required"`
	Price         float64            `bson:"price" json:"price" validate:"gte=0"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	SalePrice     *float64           `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	Stock         int                `bson:"stock" json:"stock" validate:"gte=0"`
	Images        []string           `bson:"images" json:"images"`
	Priority      int                `bson:"priority" json:"priority"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	HasVariants   bool               `bson:"hasVariants" json:"hasVariants"`
	Variants      []ProductVariant   `bson:"variants,omitempty" json:"variants,omitempty" validate:"omitempty,dive"`
	StockHistory  []StockEntry       `bson:"stockHistory" json:"stockHistory"`
	Version       int64              `bson:"version" json:"version"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VariantSummary is the aggregate a variant-bearing product derives its own
// stock and price fields from.
type VariantSummary struct {
	TotalStock int
	MinPrice   float64
	MaxPrice   float64
}

// Summarize computes the aggregate over a variant list. Every place that
// needs derived product fields goes through this one function.
func Summarize(variants []ProductVariant) VariantSummary {
	var s VariantSummary
	for i, v := range variants {
		s.TotalStock += v.Stock
		price := v.EffectivePrice()
		if i == 0 || price < s.MinPrice {
			s.MinPrice = price
		}
		if i == 0 || price > s.MaxPrice {
			s.MaxPrice = price
		}
	}
	return s
}

// SyncAggregates recomputes the derived stock/price fields of a
// variant-bearing product. Mandatory after every variant mutation.
func (p *Product) SyncAggregates() {
	if !p.HasVariants {
		return
	}
	s := Summarize(p.Variants)
	p.Stock = s.TotalStock
	p.Price = s.MinPrice
}

func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		return *p.SalePrice
	}
	return p.Price
}
