package integration

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revoa/backend/internal/domain/quote"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func quoteVariants(skus ...string) []quote.QuoteVariant {
	variants := make([]quote.QuoteVariant, 0, len(skus))
	for _, sku := range skus {
		variants = append(variants, quote.QuoteVariant{
			SKU:         sku,
			CostPerItem: d("10"),
			Shipping:    quote.NewShippingRules(d("5"), nil, nil),
		})
	}
	return variants
}

func externalProduct(variants ...ExternalVariant) *ExternalProduct {
	return &ExternalProduct{
		ID:       "gid://shopify/Product/42",
		Title:    "Hoodie",
		Variants: variants,
	}
}

func TestNewReconciliation(t *testing.T) {
	t.Run("exact SKU match takes precedence over position", func(t *testing.T) {
		product := externalProduct(
			ExternalVariant{ID: "v1", Title: "A-2 variant", SKU: "A-2", Price: d("30")},
			ExternalVariant{ID: "v2", Title: "X-9 variant", SKU: "X-9", Price: d("35")},
		)

		r := NewReconciliation(quoteVariants("A-1", "A-2"), product)

		idx, ok := r.Assignment("v1")
		require.True(t, ok)
		require.NotNil(t, idx)
		assert.Equal(t, 1, *idx, "v1 matches quote SKU A-2")

		idx, ok = r.Assignment("v2")
		require.True(t, ok)
		assert.Nil(t, idx, "X-9 has an unmatched SKU and its positional candidate is claimed")

		assert.Equal(t, 1, r.UnmappedCount())
	})

	t.Run("positional pairing for SKU-less externals", func(t *testing.T) {
		product := externalProduct(
			ExternalVariant{ID: "v1", Title: "First", SKU: "", Price: d("30")},
			ExternalVariant{ID: "v2", Title: "Second", SKU: "", Price: d("35")},
		)

		r := NewReconciliation(quoteVariants("A-1", "A-2"), product)

		idx, _ := r.Assignment("v1")
		require.NotNil(t, idx)
		assert.Equal(t, 0, *idx)

		idx, _ = r.Assignment("v2")
		require.NotNil(t, idx)
		assert.Equal(t, 1, *idx)
		assert.Equal(t, 0, r.UnmappedCount())
	})

	t.Run("positions beyond quote variant bounds stay unmapped", func(t *testing.T) {
		product := externalProduct(
			ExternalVariant{ID: "v1", SKU: "A-1", Price: d("30")},
			ExternalVariant{ID: "v2", SKU: "", Price: d("35")},
			ExternalVariant{ID: "v3", SKU: "", Price: d("40")},
		)

		r := NewReconciliation(quoteVariants("A-1"), product)

		idx, _ := r.Assignment("v1")
		require.NotNil(t, idx)
		assert.Equal(t, 0, *idx)

		for _, id := range []string{"v2", "v3"} {
			idx, _ = r.Assignment(id)
			assert.Nil(t, idx)
		}
		assert.Equal(t, 2, r.UnmappedCount())
	})
}

func TestReconciliationAssign(t *testing.T) {
	product := externalProduct(
		ExternalVariant{ID: "v1", SKU: "A-1", Price: d("30")},
		ExternalVariant{ID: "v2", SKU: "A-2", Price: d("35")},
	)
	r := NewReconciliation(quoteVariants("A-1", "A-2"), product)

	t.Run("override to nil unmaps", func(t *testing.T) {
		require.NoError(t, r.Assign("v1", nil))
		idx, _ := r.Assignment("v1")
		assert.Nil(t, idx)
		assert.Equal(t, 1, r.UnmappedCount())
	})

	t.Run("duplicate quote index is permitted", func(t *testing.T) {
		one := 1
		require.NoError(t, r.Assign("v1", &one))
		require.NoError(t, r.Assign("v2", &one))
		assert.Equal(t, 0, r.UnmappedCount())
	})

	t.Run("rejects unknown external variant", func(t *testing.T) {
		zero := 0
		assert.ErrorIs(t, r.Assign("missing", &zero), ErrUnknownExternalVariant)
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		five := 5
		assert.ErrorIs(t, r.Assign("v1", &five), ErrQuoteIndexOutOfRange)
	})
}

func TestBuildMappings(t *testing.T) {
	product := externalProduct(
		ExternalVariant{ID: "v1", Title: "Black / S", SKU: "OLD-1", Price: d("30.00")},
		ExternalVariant{ID: "v2", Title: "Black / M", SKU: "A-2", Price: d("35.00")},
		ExternalVariant{ID: "v3", Title: "Orphan", SKU: "Z-9", Price: d("99.00")},
	)
	variants := quoteVariants("A-1", "A-2")
	r := NewReconciliation(variants, product)

	t.Run("computes diffs at build time", func(t *testing.T) {
		mappings := r.BuildMappings(map[int]decimal.Decimal{
			0: d("49.99"),
			1: d("35.00"),
		})

		require.Len(t, mappings, 2, "unmapped externals are skipped")

		first := mappings[0]
		assert.Equal(t, 0, first.QuoteVariantIndex)
		assert.Equal(t, "A-1", first.QuoteVariantSKU)
		assert.True(t, first.WillUpdateSKU, "external SKU OLD-1 differs from A-1")
		assert.True(t, first.WillUpdatePrice)
		assert.True(t, first.PriceDifference.Equal(d("19.99")))
		require.NotNil(t, first.IntendedSellingPrice)
		assert.True(t, first.IntendedSellingPrice.Equal(d("49.99")))

		second := mappings[1]
		assert.Equal(t, 1, second.QuoteVariantIndex)
		assert.False(t, second.WillUpdateSKU)
		assert.False(t, second.WillUpdatePrice, "intended price equals live price")

		assert.Equal(t, 1, PriceChangeCount(mappings))
	})

	t.Run("no intended price means no price update", func(t *testing.T) {
		mappings := r.BuildMappings(nil)
		for _, m := range mappings {
			assert.False(t, m.WillUpdatePrice)
			assert.Nil(t, m.IntendedSellingPrice)
		}
		assert.Equal(t, 0, PriceChangeCount(mappings))
	})

	t.Run("sub-cent difference is not a price change", func(t *testing.T) {
		mappings := r.BuildMappings(map[int]decimal.Decimal{1: d("35.005")})
		require.Len(t, mappings, 2)
		assert.False(t, mappings[1].WillUpdatePrice)
	})
}

func TestNewMappingRecord(t *testing.T) {
	merchantID := uuid.New()
	quoteID := uuid.New()

	t.Run("builds record from mapping", func(t *testing.T) {
		price := d("49.99")
		m := VariantMapping{
			QuoteVariantSKU:      "A-1",
			ShopifyVariantID:     "v1",
			WillUpdateSKU:        true,
			WillUpdatePrice:      true,
			IntendedSellingPrice: &price,
		}

		rec, err := NewMappingRecord(merchantID, quoteID, "gid://shopify/Product/42", m)
		require.NoError(t, err)
		assert.Equal(t, quoteID, rec.QuoteID)
		assert.Equal(t, "A-1", rec.QuoteVariantSKU)
		assert.True(t, rec.SKUChanged)
		assert.True(t, rec.PriceChanged)
		require.NotNil(t, rec.IntendedPrice)
		assert.True(t, rec.IntendedPrice.Equal(price))
	})

	t.Run("rejects nil quote ID", func(t *testing.T) {
		_, err := NewMappingRecord(merchantID, uuid.Nil, "p", VariantMapping{QuoteVariantSKU: "A-1"})
		assert.ErrorIs(t, err, ErrMappingInvalidQuoteID)
	})

	t.Run("rejects empty SKU", func(t *testing.T) {
		_, err := NewMappingRecord(merchantID, quoteID, "p", VariantMapping{})
		assert.ErrorIs(t, err, ErrMappingEmptySKU)
	})
}
