// Package catalog holds the display ordering rules for the storefront.
package catalog

import (
	"sort"

	"github.com/Ereklebazanovi/lifeStore-sub000/models"
)

// TopPriority is the tier at which an item stays in its priority slot even
// when sold out. Smaller merchandising bumps never mask a stock-out.
const TopPriority = 100

// SortProducts orders the catalog for display: sold-out products sink below
// in-stock ones unless their priority reaches TopPriority, then priority
// descending, then newest first. The input slice is not modified; the sort
// is stable and deterministic.
func SortProducts(products []models.Product) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		aOut := a.Stock == 0 && a.Priority < TopPriority
		bOut := b.Stock == 0 && b.Priority < TopPriority
		if aOut != bOut {
			return bOut
		}

		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}

		return a.CreatedAt.After(b.CreatedAt)
	})

	return sorted
}
