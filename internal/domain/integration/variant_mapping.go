package integration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/quote"
)

// VariantMapping is an ephemeral reconciliation record built at commit
// time: one quote variant paired with one external variant, plus the
// diffs needed to sync them. It is not persisted until commit.
type VariantMapping struct {
	QuoteVariantIndex int
	QuoteVariantSKU   string
	QuoteUnitCost     decimal.Decimal
	QuoteShipping     quote.ShippingRules

	ShopifyVariantID    string
	ShopifyVariantTitle string
	ShopifyVariantSKU   string
	ShopifyVariantPrice decimal.Decimal

	WillUpdateSKU   bool
	WillUpdatePrice bool
	// PriceDifference is intended minus current; only meaningful when
	// WillUpdatePrice is set.
	PriceDifference      decimal.Decimal
	IntendedSellingPrice *decimal.Decimal
}

// ---------------------------------------------------------------------------
// MappingRecord (persisted)
// ---------------------------------------------------------------------------

// MappingRecord is the persisted form of a committed variant mapping,
// keyed by (quote_id, quote_variant_sku).
type MappingRecord struct {
	ID               uuid.UUID
	MerchantID       uuid.UUID
	QuoteID          uuid.UUID
	QuoteVariantSKU  string
	ShopifyProductID string
	ShopifyVariantID string
	IntendedPrice    *decimal.Decimal
	SKUChanged       bool
	PriceChanged     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewMappingRecord builds a persisted record from a commit-time mapping
func NewMappingRecord(merchantID, quoteID uuid.UUID, shopifyProductID string, m VariantMapping) (*MappingRecord, error) {
	if quoteID == uuid.Nil {
		return nil, ErrMappingInvalidQuoteID
	}
	if m.QuoteVariantSKU == "" {
		return nil, ErrMappingEmptySKU
	}

	now := time.Now()
	return &MappingRecord{
		ID:               uuid.New(),
		MerchantID:       merchantID,
		QuoteID:          quoteID,
		QuoteVariantSKU:  m.QuoteVariantSKU,
		ShopifyProductID: shopifyProductID,
		ShopifyVariantID: m.ShopifyVariantID,
		IntendedPrice:    m.IntendedSellingPrice,
		SKUChanged:       m.WillUpdateSKU,
		PriceChanged:     m.WillUpdatePrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// VariantMappingRepository persists committed variant mappings. Upsert
// semantics are keyed by (quote_id, quote_variant_sku) so re-running a
// commit updates records in place.
type VariantMappingRepository interface {
	Upsert(ctx context.Context, record *MappingRecord) error
	FindByQuote(ctx context.Context, quoteID uuid.UUID) ([]MappingRecord, error)
	DeleteByQuote(ctx context.Context, quoteID uuid.UUID) error
}
