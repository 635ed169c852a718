package quote

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatShipping(t *testing.T, rate string) ShippingRules {
	t.Helper()
	rules := NewShippingRules(d(rate), nil, nil)
	require.NoError(t, rules.Validate())
	return rules
}

func TestNewQuote(t *testing.T) {
	merchantID := uuid.New()

	t.Run("creates draft quote", func(t *testing.T) {
		q, err := NewQuote(merchantID, "Hoodie restock")
		require.NoError(t, err)

		assert.Equal(t, merchantID, q.MerchantID)
		assert.Equal(t, "Hoodie restock", q.Title)
		assert.Equal(t, QuoteStatusDraft, q.Status)
		assert.Empty(t, q.Variants)
		assert.Equal(t, 1, q.GetVersion())
	})

	t.Run("publishes QuoteCreated event", func(t *testing.T) {
		q, err := NewQuote(merchantID, "Hoodie restock")
		require.NoError(t, err)

		events := q.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeQuoteCreated, events[0].EventType())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewQuote(merchantID, "   ")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}

func TestQuoteAddVariant(t *testing.T) {
	merchantID := uuid.New()

	t.Run("adds variant with attributes", func(t *testing.T) {
		q, err := NewQuote(merchantID, "Hoodie")
		require.NoError(t, err)

		attrs := []ProductAttribute{{Name: "Color", Value: "Black"}}
		v, err := q.AddVariant("Black", "HOOD-BLK", d("12.50"), attrs, flatShipping(t, "5"))
		require.NoError(t, err)

		assert.Equal(t, "HOOD-BLK", v.SKU)
		assert.True(t, v.CostPerItem.Equal(d("12.50")))
		require.Len(t, q.Variants, 1)
	})

	t.Run("rejects blank SKU", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		_, err := q.AddVariant("Black", "  ", d("1"), nil, flatShipping(t, "5"))
		assert.ErrorIs(t, err, ErrEmptySKU)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		_, err := q.AddVariant("Black", "HOOD-BLK", d("1"), nil, flatShipping(t, "5"))
		require.NoError(t, err)

		_, err = q.AddVariant("Black II", "HOOD-BLK", d("1"), nil, flatShipping(t, "5"))
		assert.ErrorIs(t, err, ErrDuplicateSKU)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		_, err := q.AddVariant("Black", "HOOD-BLK", d("-1"), nil, flatShipping(t, "5"))
		assert.ErrorIs(t, err, ErrNegativeCost)
	})

	t.Run("rejects invalid shipping rules", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		bad := NewShippingRules(d("-5"), nil, nil)
		_, err := q.AddVariant("Black", "HOOD-BLK", d("1"), nil, bad)
		assert.ErrorIs(t, err, ErrNegativeShippingRate)
	})
}

func TestQuoteReplaceVariants(t *testing.T) {
	merchantID := uuid.New()

	t.Run("replaces variant list and records event", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		_, err := q.AddVariant("Old", "OLD-1", d("1"), nil, flatShipping(t, "5"))
		require.NoError(t, err)
		q.ClearDomainEvents()

		variants := []QuoteVariant{
			{ID: uuid.New(), Name: "Black / S", SKU: "HOOD-BLK-S", CostPerItem: d("12"), Shipping: flatShipping(t, "5")},
			{ID: uuid.New(), Name: "Black / M", SKU: "HOOD-BLK-M", CostPerItem: d("12"), Shipping: flatShipping(t, "5")},
		}
		require.NoError(t, q.ReplaceVariants(variants))

		require.Len(t, q.Variants, 2)
		events := q.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeQuoteVariantsReplaced, events[0].EventType())
	})

	t.Run("fills in missing variant ids", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		variants := []QuoteVariant{
			{Name: "Black / S", SKU: "HOOD-BLK-S", CostPerItem: d("12"), Shipping: flatShipping(t, "5")},
			{Name: "Black / M", SKU: "HOOD-BLK-M", CostPerItem: d("12"), Shipping: flatShipping(t, "5")},
		}
		require.NoError(t, q.ReplaceVariants(variants))

		assert.NotEqual(t, uuid.Nil, q.Variants[0].ID)
		assert.NotEqual(t, uuid.Nil, q.Variants[1].ID)
		assert.NotEqual(t, q.Variants[0].ID, q.Variants[1].ID)
	})

	t.Run("rejects duplicate SKUs in replacement", func(t *testing.T) {
		q, _ := NewQuote(merchantID, "Hoodie")
		variants := []QuoteVariant{
			{SKU: "DUP", CostPerItem: d("1"), Shipping: flatShipping(t, "5")},
			{SKU: "DUP", CostPerItem: d("1"), Shipping: flatShipping(t, "5")},
		}
		assert.ErrorIs(t, q.ReplaceVariants(variants), ErrDuplicateSKU)
	})
}

func TestQuoteMarkSynced(t *testing.T) {
	q, _ := NewQuote(uuid.New(), "Hoodie")
	q.ConnectProduct("gid://shopify/Product/42")
	q.ClearDomainEvents()

	q.MarkSynced()

	assert.True(t, q.IsSynced())
	assert.Equal(t, QuoteStatusSynced, q.Status)

	events := q.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeQuoteSynced, events[0].EventType())
}

func TestQuoteRemoveVariant(t *testing.T) {
	q, _ := NewQuote(uuid.New(), "Hoodie")
	_, err := q.AddVariant("Black", "HOOD-BLK", d("1"), nil, flatShipping(t, "5"))
	require.NoError(t, err)

	require.NoError(t, q.RemoveVariant("HOOD-BLK"))
	assert.Empty(t, q.Variants)
	assert.ErrorIs(t, q.RemoveVariant("HOOD-BLK"), ErrVariantNotFound)
}
