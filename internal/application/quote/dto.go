package quote

import (
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/quote"
)

// VariantAxisInput is one user-declared variant axis as submitted by
// the authoring UI.
type VariantAxisInput struct {
	Name   string
	Values []string
}

// VariantInput is one quote variant as submitted when the UI commits a
// selected combination set.
type VariantInput struct {
	Name        string
	SKU         string
	CostPerItem decimal.Decimal
	Attributes  []quote.ProductAttribute
	Shipping    quote.ShippingRules
}

// toDomain converts variant inputs to domain variants
func toDomainVariants(inputs []VariantInput) []quote.QuoteVariant {
	variants := make([]quote.QuoteVariant, 0, len(inputs))
	for _, in := range inputs {
		variants = append(variants, quote.QuoteVariant{
			Name:        in.Name,
			SKU:         in.SKU,
			CostPerItem: in.CostPerItem,
			Attributes:  in.Attributes,
			Shipping:    in.Shipping,
		})
	}
	return variants
}
