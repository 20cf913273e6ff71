// Package catalog derives the visible product subset from the cached
// snapshot and the user's price bounds.
package catalog

import (
	"strconv"
	"strings"

	"bloomfront/internal/domain"
)

// Apply returns the products satisfying the filter, preserving input order.
// With no bounds everything passes. With any bound active a product needs a
// usable price: not hidden, non-empty, parseable after normalizing a comma
// decimal separator. Priceless items are hidden rather than guessed at.
func Apply(products []domain.Product, f domain.PriceFilter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	if !f.Active() {
		return append(out, products...)
	}
	for _, p := range products {
		price, ok := usablePrice(p)
		if !ok {
			continue
		}
		if f.Min != nil && price < *f.Min {
			continue
		}
		if f.Max != nil && price > *f.Max {
			continue
		}
		out = append(out, p)
	}
	return out
}

func usablePrice(p domain.Product) (float64, bool) {
	if p.HidePrice {
		return 0, false
	}
	s := strings.TrimSpace(p.Price)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
