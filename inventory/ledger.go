// Package inventory implements stock accounting: the append-only stock
// ledger and the available-to-promise calculation used while composing
// manual orders. All functions operate on plain model values and do no I/O;
// persisting the mutated product is the caller's job.
package inventory

import (
	"errors"
	"time"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

var (
	ErrInvalidQuantity = errors.New("stock quantity cannot be negative")
	ErrVariantNotFound = errors.New("variant not found")
	ErrDerivedStock    = errors.New("stock of a variant product is derived from its variants")
)

// SetProductStock sets the stock of a simple product to an absolute quantity
// and appends a history entry recording the result. Variant-bearing products
// are rejected: their stock is an aggregate and only moves through variant
// mutations.
func SetProductStock(p *models.Product, quantity int, reason, note string, now time.Time) (models.StockEntry, error) {
	if quantity < 0 {
		return models.StockEntry{}, ErrInvalidQuantity
	}
	if p.HasVariants {
		return models.StockEntry{}, ErrDerivedStock
	}

	entry := models.StockEntry{
		Quantity:  quantity,
		Reason:    reason,
		Note:      note,
		CreatedAt: now,
	}
	p.Stock = quantity
	p.StockHistory = append(p.StockHistory, entry)
	p.UpdatedAt = now
	return entry, nil
}

// SetVariantStock sets the stock of one variant to an absolute quantity,
// appends a history entry on that variant, and recomputes the parent
// aggregates. The recomputation is mandatory, not a cache refresh.
func SetVariantStock(p *models.Product, variantID string, quantity int, reason, note string, now time.Time) (models.StockEntry, error) {
	if quantity < 0 {
		return models.StockEntry{}, ErrInvalidQuantity
	}

	for i := range p.Variants {
		if p.Variants[i].ID != variantID {
			continue
		}
		entry := models.StockEntry{
			Quantity:  quantity,
			Reason:    reason,
			Note:      note,
			CreatedAt: now,
		}
		p.Variants[i].Stock = quantity
		p.Variants[i].StockHistory = append(p.Variants[i].StockHistory, entry)
		p.SyncAggregates()
		p.UpdatedAt = now
		return entry, nil
	}
	return models.StockEntry{}, ErrVariantNotFound
}

// RemoveVariant deletes a variant from its parent. With siblings remaining
// the aggregates recompute; removing the last variant demotes the product
// back to a simple product with zeroed price and stock.
func RemoveVariant(p *models.Product, variantID string, now time.Time) error {
	idx := -1
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrVariantNotFound
	}

	p.Variants = append(p.Variants[:idx], p.Variants[idx+1:]...)
	if len(p.Variants) == 0 {
		p.HasVariants = false
		p.Variants = nil
		p.Price = 0
		p.Stock = 0
		p.SalePrice = nil
	} else {
		p.SyncAggregates()
	}
	p.UpdatedAt = now
	return nil
}

// Replay reconstructs the current stock from a history log. Entries carry
// absolute resulting quantities, so the current stock is the last entry.
func Replay(history []models.StockEntry) int {
	if len(history) == 0 {
		return 0
	}
	return history[len(history)-1].Quantity
}

// StockFor returns the raw ledger stock of a SKU: the product's own stock,
// or a specific variant's stock when variantID is non-empty.
func StockFor(p *models.Product, variantID string) (int, error) {
	if variantID == "" {
		return p.Stock, nil
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return p.Variants[i].Stock, nil
		}
	}
	return 0, ErrVariantNotFound
}
