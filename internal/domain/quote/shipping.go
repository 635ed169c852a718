package quote

import (
	"sort"

	"github.com/shopspring/decimal"
)

// QuantityTier is a shipping discount keyed by a minimum order
// quantity. DiscountAmount is subtracted from the shipping subtotal
// once the order quantity reaches MinQty; tiers are not cumulative.
type QuantityTier struct {
	MinQty         int             `json:"min_qty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// ShippingRules is a three-level shipping cost rule set: a default
// per-unit rate, optional per-country overrides, and optional
// quantity-tier discounts kept sorted ascending by MinQty.
type ShippingRules struct {
	Default    decimal.Decimal            `json:"default"`
	ByCountry  map[string]decimal.Decimal `json:"by_country,omitempty"`
	ByQuantity []QuantityTier             `json:"by_quantity,omitempty"`
}

// NewShippingRules creates a rule set with the given default rate and
// normalizes the tier order.
func NewShippingRules(defaultRate decimal.Decimal, byCountry map[string]decimal.Decimal, tiers []QuantityTier) ShippingRules {
	sorted := make([]QuantityTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinQty < sorted[j].MinQty
	})

	return ShippingRules{
		Default:    defaultRate,
		ByCountry:  byCountry,
		ByQuantity: sorted,
	}
}

// Validate checks the rule set at authoring time. The evaluator itself
// assumes validated input.
func (r ShippingRules) Validate() error {
	if r.Default.IsNegative() {
		return ErrNegativeShippingRate
	}
	for _, rate := range r.ByCountry {
		if rate.IsNegative() {
			return ErrNegativeShippingRate
		}
	}
	for _, tier := range r.ByQuantity {
		if tier.MinQty < 1 {
			return ErrInvalidQuantityTier
		}
		if tier.DiscountAmount.IsNegative() {
			return ErrInvalidQuantityTier
		}
	}
	return nil
}

// Evaluate resolves the shipping cost for a quantity and an optional
// destination country code. The country rate replaces the default rate
// when present; the highest-threshold tier the quantity qualifies for
// is applied once; the result never goes below zero.
func (r ShippingRules) Evaluate(quantity int, country string) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}

	rate := r.Default
	if country != "" {
		if override, ok := r.ByCountry[country]; ok {
			rate = override
		}
	}

	subtotal := rate.Mul(decimal.NewFromInt(int64(quantity)))

	// Tiers are sorted ascending by MinQty; scan in reverse so the
	// first tier that qualifies is the highest threshold.
	for i := len(r.ByQuantity) - 1; i >= 0; i-- {
		tier := r.ByQuantity[i]
		if quantity >= tier.MinQty {
			cost := subtotal.Sub(tier.DiscountAmount)
			if cost.IsNegative() {
				return decimal.Zero
			}
			return cost
		}
	}

	return subtotal
}
