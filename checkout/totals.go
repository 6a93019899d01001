// Package checkout derives order totals from line items.
package checkout

import "strings"

// Deliveries inside the home city are free; everywhere else pays a flat fee.
const (
	HomeCity        = "Tbilisi"
	FlatShippingFee = 7.0
)

// Line carries the already-resolved unit price: callers pass the effective
// price (sale price when applicable), the calculator never re-derives
// discounts.
type Line struct {
	UnitPrice float64
	Quantity  int
}

type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"totalAmount"`
}

// ComputeTotals sums the lines and applies the city shipping rule.
func ComputeTotals(lines []Line, city string) Totals {
	var t Totals
	for _, line := range lines {
		t.Subtotal += line.UnitPrice * float64(line.Quantity)
	}
	if !IsHomeCity(city) {
		t.ShippingCost = FlatShippingFee
	}
	t.Total = t.Subtotal + t.ShippingCost
	return t
}

func IsHomeCity(city string) bool {
	return strings.EqualFold(strings.TrimSpace(city), HomeCity)
}

// EffectiveUnitPrice resolves the price a line actually charges: the sale
// price when one is set and strictly lower than the base price.
func EffectiveUnitPrice(price float64, salePrice *float64) float64 {
	if salePrice != nil && *salePrice < price {
		return *salePrice
	}
	return price
}
