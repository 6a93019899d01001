package inventory

// DraftLine is an order line under composition, not yet committed. ProductID
// is the hex id of the referenced product; VariantID is empty for simple
// products. Free-text manual lines carry no ProductID and never claim stock.
type DraftLine struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// AvailableStock computes the available-to-promise quantity for one SKU:
// the raw ledger stock minus everything other draft lines have already
// claimed for the same SKU. excludeIndex skips the line currently being
// edited so it does not subtract from itself; pass -1 to subtract all lines.
// SKU matching is exact on (productID, variantID-or-absence): a simple line
// and a variant line of the same product are distinct targets. The result is
// clamped to zero.
func AvailableStock(rawStock int, productID, variantID string, draft []DraftLine, excludeIndex int) int {
	if rawStock <= 0 {
		return 0
	}

	available := rawStock
	for i, line := range draft {
		if i == excludeIndex {
			continue
		}
		if line.ProductID != productID || line.VariantID != variantID {
			continue
		}
		// A malformed line with a non-positive quantity claims nothing;
		// it must never push availability above the raw stock.
		if line.Quantity <= 0 {
			continue
		}
		available -= line.Quantity
	}

	if available < 0 {
		return 0
	}
	return available
}
