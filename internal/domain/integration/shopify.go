package integration

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

var (
	// Platform errors
	ErrPlatformNotConfigured   = errors.New("integration: platform not configured")
	ErrPlatformRequestFailed   = errors.New("integration: platform request failed")
	ErrPlatformInvalidResponse = errors.New("integration: invalid platform response")
	ErrPlatformRateLimited     = errors.New("integration: platform rate limited")
	ErrProductNotFound         = errors.New("integration: product not found on platform")
	ErrVariantNotFound         = errors.New("integration: variant not found on platform")

	// Reconciliation errors
	ErrUnknownExternalVariant = errors.New("integration: external variant not part of this reconciliation")
	ErrQuoteIndexOutOfRange   = errors.New("integration: quote variant index out of range")

	// Mapping record errors
	ErrMappingRecordNotFound = errors.New("integration: variant mapping record not found")
	ErrMappingInvalidQuoteID = errors.New("integration: invalid quote ID")
	ErrMappingEmptySKU       = errors.New("integration: mapping record requires a quote variant SKU")
)

// ---------------------------------------------------------------------------
// External catalog views (read-only)
// ---------------------------------------------------------------------------

// SelectedOption is one option assignment on a live catalog variant,
// e.g. {Color, Black}.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ExternalVariant is a read-only view of a variant record that already
// exists in the connected storefront's catalog.
type ExternalVariant struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SKU             string           `json:"sku"`
	Price           decimal.Decimal  `json:"price"`
	SelectedOptions []SelectedOption `json:"selected_options"`
}

// ProductOption is a declared option axis on a live catalog product.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ExternalProduct is a read-only view of a live catalog product with
// its variants.
type ExternalProduct struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Options  []ProductOption   `json:"options"`
	Variants []ExternalVariant `json:"variants"`
}

// ---------------------------------------------------------------------------
// Collaborator interfaces
// ---------------------------------------------------------------------------

// CatalogReader reads live products from the connected storefront.
// A read failure is fail-fast and retryable; no partial catalog state
// is ever cached.
type CatalogReader interface {
	GetProductWithVariants(ctx context.Context, productID string) (*ExternalProduct, error)
}

// PriceUpdater pushes a price change for a single catalog variant.
type PriceUpdater interface {
	UpdateVariantPrice(ctx context.Context, variantID string, price decimal.Decimal) error
}
