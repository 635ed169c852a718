package integration

import (
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/quote"
)

// priceEpsilon is the threshold below which an intended price is
// considered equal to the live catalog price.
var priceEpsilon = decimal.NewFromFloat(0.01)

// Reconciliation pairs a quote's locally-defined variants with a live
// external product's variants before a commit. It holds an assignment
// table from external variant ID to quote variant index (or nil for
// unmapped), in catalog order.
type Reconciliation struct {
	quoteVariants []quote.QuoteVariant
	product       *ExternalProduct

	order       []string
	assignments map[string]*int
}

// NewReconciliation builds the initial auto-mapping. For each external
// variant, an exact non-empty SKU match against a not-yet-claimed quote
// variant wins; failing that, positional pairing applies when the
// position is in bounds and that quote variant is still unclaimed;
// otherwise the external variant starts unmapped.
func NewReconciliation(quoteVariants []quote.QuoteVariant, product *ExternalProduct) *Reconciliation {
	r := &Reconciliation{
		quoteVariants: append([]quote.QuoteVariant(nil), quoteVariants...),
		product:       product,
		order:         make([]string, 0, len(product.Variants)),
		assignments:   make(map[string]*int, len(product.Variants)),
	}

	claimed := make(map[int]bool, len(quoteVariants))

	for i, external := range product.Variants {
		r.order = append(r.order, external.ID)

		if idx, ok := r.matchBySKU(external.SKU, claimed); ok {
			claimed[idx] = true
			r.assignments[external.ID] = intPtr(idx)
			continue
		}

		if i < len(r.quoteVariants) && !claimed[i] {
			claimed[i] = true
			r.assignments[external.ID] = intPtr(i)
			continue
		}

		r.assignments[external.ID] = nil
	}

	return r
}

func (r *Reconciliation) matchBySKU(sku string, claimed map[int]bool) (int, bool) {
	if sku == "" {
		return 0, false
	}
	for i, v := range r.quoteVariants {
		if !claimed[i] && v.SKU == sku {
			return i, true
		}
	}
	return 0, false
}

// Assign overrides the mapping for an external variant. A nil index
// unmaps it. Assigning the same quote index to two external variants is
// allowed: a merchant may intentionally sell one quote variant under
// two external SKUs.
func (r *Reconciliation) Assign(externalVariantID string, index *int) error {
	if _, ok := r.assignments[externalVariantID]; !ok {
		return ErrUnknownExternalVariant
	}
	if index != nil && (*index < 0 || *index >= len(r.quoteVariants)) {
		return ErrQuoteIndexOutOfRange
	}
	r.assignments[externalVariantID] = index
	return nil
}

// Assignment returns the current quote index for an external variant,
// or nil when unmapped.
func (r *Reconciliation) Assignment(externalVariantID string) (*int, bool) {
	idx, ok := r.assignments[externalVariantID]
	return idx, ok
}

// UnmappedCount counts external variants with no quote variant
// assigned. Callers are expected to warn before committing while this
// is non-zero.
func (r *Reconciliation) UnmappedCount() int {
	count := 0
	for _, idx := range r.assignments {
		if idx == nil {
			count++
		}
	}
	return count
}

// BuildMappings materializes the mapping list with per-mapping diffs,
// in catalog order, skipping unmapped external variants. The diff
// fields are computed here, at build time, not continuously.
// intendedPrices is keyed by quote variant index; a missing entry means
// no selling price was set and no price update will be attempted.
func (r *Reconciliation) BuildMappings(intendedPrices map[int]decimal.Decimal) []VariantMapping {
	mappings := make([]VariantMapping, 0, len(r.order))

	for _, externalID := range r.order {
		idx := r.assignments[externalID]
		if idx == nil {
			continue
		}

		external := r.externalByID(externalID)
		local := r.quoteVariants[*idx]

		m := VariantMapping{
			QuoteVariantIndex:   *idx,
			QuoteVariantSKU:     local.SKU,
			QuoteUnitCost:       local.CostPerItem,
			QuoteShipping:       local.Shipping,
			ShopifyVariantID:    external.ID,
			ShopifyVariantTitle: external.Title,
			ShopifyVariantSKU:   external.SKU,
			ShopifyVariantPrice: external.Price,
			WillUpdateSKU:       external.SKU != local.SKU,
		}

		if intended, ok := intendedPrices[*idx]; ok {
			price := intended
			m.IntendedSellingPrice = &price
			diff := intended.Sub(external.Price)
			if diff.Abs().GreaterThan(priceEpsilon) {
				m.WillUpdatePrice = true
				m.PriceDifference = diff
			}
		}

		mappings = append(mappings, m)
	}

	return mappings
}

func (r *Reconciliation) externalByID(id string) ExternalVariant {
	for _, v := range r.product.Variants {
		if v.ID == id {
			return v
		}
	}
	return ExternalVariant{}
}

// PriceChangeCount counts mappings that will push a price change.
// Together with UnmappedCount it forms the caller's warn-then-proceed
// gate before commit.
func PriceChangeCount(mappings []VariantMapping) int {
	count := 0
	for _, m := range mappings {
		if m.WillUpdatePrice {
			count++
		}
	}
	return count
}

func intPtr(i int) *int {
	return &i
}
