package integration

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/integration"
)

// MappingOverride is one manual correction applied on top of the
// auto-mapping: point an external variant at a different quote variant
// index, or unmap it with a nil index.
type MappingOverride struct {
	ExternalVariantID string
	QuoteVariantIndex *int
}

// ReconcileInput describes one reconciliation run against a live
// catalog product.
type ReconcileInput struct {
	QuoteID          uuid.UUID
	ShopifyProductID string
	Overrides        []MappingOverride
	// IntendedPrices is keyed by quote variant index; a missing entry
	// means no selling price was chosen for that variant.
	IntendedPrices map[int]decimal.Decimal
}

// ReconcileResult is the reviewable outcome of a reconciliation run,
// surfaced to the merchant before commit.
type ReconcileResult struct {
	Product          *integration.ExternalProduct
	Mappings         []integration.VariantMapping
	UnmappedCount    int
	PriceChangeCount int
}

// CommitInput carries a reviewed mapping set into the commit loop.
type CommitInput struct {
	QuoteID          uuid.UUID
	ShopifyProductID string
	Mappings         []integration.VariantMapping
}

// CommitResult reports the per-mapping outcome of a commit. The commit
// is best-effort: failures are collected, not propagated.
type CommitResult struct {
	PersistedCount      int
	PriceUpdateCount    int
	PriceUpdateFailures []string
}
