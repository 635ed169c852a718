package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/integration"
)

// MappingOverrideRequest is one manual correction on top of the auto-mapping.
// A nil quote_variant_index unmaps the external variant.
type MappingOverrideRequest struct {
	ExternalVariantID string `json:"external_variant_id" binding:"required" example:"11"`
	QuoteVariantIndex *int   `json:"quote_variant_index" example:"0"`
}

// ReconcileRequest runs a reconciliation against the live catalog product
type ReconcileRequest struct {
	ShopifyProductID string                   `json:"shopify_product_id" binding:"required" example:"100"`
	Overrides        []MappingOverrideRequest `json:"overrides" binding:"omitempty,dive"`
	// IntendedPrices is keyed by quote variant index
	IntendedPrices map[int]float64 `json:"intended_prices"`
}

// CommitMappingRequest is one reviewed mapping submitted for commit
type CommitMappingRequest struct {
	QuoteVariantIndex    int      `json:"quote_variant_index" binding:"min=0"`
	QuoteVariantSKU      string   `json:"quote_variant_sku" binding:"required" example:"TOTE-RED-S"`
	ShopifyVariantID     string   `json:"shopify_variant_id" binding:"required" example:"11"`
	ShopifyVariantTitle  string   `json:"shopify_variant_title" example:"Red / S"`
	WillUpdateSKU        bool     `json:"will_update_sku"`
	WillUpdatePrice      bool     `json:"will_update_price"`
	IntendedSellingPrice *float64 `json:"intended_selling_price" example:"27.99"`
}

// CommitRequest carries a reviewed mapping set into the commit loop
type CommitRequest struct {
	ShopifyProductID string                 `json:"shopify_product_id" binding:"required" example:"100"`
	Mappings         []CommitMappingRequest `json:"mappings" binding:"required,dive"`
}

func (r CommitRequest) toDomainMappings() []integration.VariantMapping {
	mappings := make([]integration.VariantMapping, 0, len(r.Mappings))
	for _, m := range r.Mappings {
		mapping := integration.VariantMapping{
			QuoteVariantIndex:   m.QuoteVariantIndex,
			QuoteVariantSKU:     m.QuoteVariantSKU,
			ShopifyVariantID:    m.ShopifyVariantID,
			ShopifyVariantTitle: m.ShopifyVariantTitle,
			WillUpdateSKU:       m.WillUpdateSKU,
			WillUpdatePrice:     m.WillUpdatePrice,
		}
		if m.IntendedSellingPrice != nil {
			price := decimal.NewFromFloat(*m.IntendedSellingPrice)
			mapping.IntendedSellingPrice = &price
		}
		mappings = append(mappings, mapping)
	}
	return mappings
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// SelectedOptionResponse is one option assignment on a catalog variant
type SelectedOptionResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ExternalVariantResponse is the API view of a live catalog variant
type ExternalVariantResponse struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	SKU             string                   `json:"sku"`
	Price           string                   `json:"price"`
	SelectedOptions []SelectedOptionResponse `json:"selected_options"`
}

// ProductOptionResponse is one declared option axis on a catalog product
type ProductOptionResponse struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ExternalProductResponse is the API view of a live catalog product
type ExternalProductResponse struct {
	ID       string                    `json:"id"`
	Title    string                    `json:"title"`
	Options  []ProductOptionResponse   `json:"options"`
	Variants []ExternalVariantResponse `json:"variants"`
}

// VariantMappingResponse is one reviewable pairing between a quote
// variant and an external variant
type VariantMappingResponse struct {
	QuoteVariantIndex    int     `json:"quote_variant_index"`
	QuoteVariantSKU      string  `json:"quote_variant_sku"`
	QuoteUnitCost        string  `json:"quote_unit_cost"`
	ShopifyVariantID     string  `json:"shopify_variant_id"`
	ShopifyVariantTitle  string  `json:"shopify_variant_title"`
	ShopifyVariantSKU    string  `json:"shopify_variant_sku"`
	ShopifyVariantPrice  string  `json:"shopify_variant_price"`
	WillUpdateSKU        bool    `json:"will_update_sku"`
	WillUpdatePrice      bool    `json:"will_update_price"`
	PriceDifference      string  `json:"price_difference,omitempty"`
	IntendedSellingPrice *string `json:"intended_selling_price,omitempty"`
}

// ReconcileResponse is the reviewable outcome of a reconciliation run
type ReconcileResponse struct {
	Product          ExternalProductResponse  `json:"product"`
	Mappings         []VariantMappingResponse `json:"mappings"`
	UnmappedCount    int                      `json:"unmapped_count"`
	PriceChangeCount int                      `json:"price_change_count"`
}

// CommitResponse reports the per-mapping outcome of a commit
type CommitResponse struct {
	PersistedCount      int      `json:"persisted_count"`
	PriceUpdateCount    int      `json:"price_update_count"`
	PriceUpdateFailures []string `json:"price_update_failures"`
}

// MappingRecordResponse is the API view of a persisted mapping record
type MappingRecordResponse struct {
	ID               string    `json:"id"`
	QuoteID          string    `json:"quote_id"`
	QuoteVariantSKU  string    `json:"quote_variant_sku"`
	ShopifyProductID string    `json:"shopify_product_id"`
	ShopifyVariantID string    `json:"shopify_variant_id"`
	IntendedPrice    *string   `json:"intended_price,omitempty"`
	SKUChanged       bool      `json:"sku_changed"`
	PriceChanged     bool      `json:"price_changed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newExternalProductResponse(p *integration.ExternalProduct) ExternalProductResponse {
	options := make([]ProductOptionResponse, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, ProductOptionResponse{Name: o.Name, Values: o.Values})
	}

	variants := make([]ExternalVariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		selected := make([]SelectedOptionResponse, 0, len(v.SelectedOptions))
		for _, s := range v.SelectedOptions {
			selected = append(selected, SelectedOptionResponse{Name: s.Name, Value: s.Value})
		}
		variants = append(variants, ExternalVariantResponse{
			ID:              v.ID,
			Title:           v.Title,
			SKU:             v.SKU,
			Price:           v.Price.String(),
			SelectedOptions: selected,
		})
	}

	return ExternalProductResponse{
		ID:       p.ID,
		Title:    p.Title,
		Options:  options,
		Variants: variants,
	}
}

func newVariantMappingResponses(mappings []integration.VariantMapping) []VariantMappingResponse {
	out := make([]VariantMappingResponse, 0, len(mappings))
	for _, m := range mappings {
		resp := VariantMappingResponse{
			QuoteVariantIndex:   m.QuoteVariantIndex,
			QuoteVariantSKU:     m.QuoteVariantSKU,
			QuoteUnitCost:       m.QuoteUnitCost.String(),
			ShopifyVariantID:    m.ShopifyVariantID,
			ShopifyVariantTitle: m.ShopifyVariantTitle,
			ShopifyVariantSKU:   m.ShopifyVariantSKU,
			ShopifyVariantPrice: m.ShopifyVariantPrice.String(),
			WillUpdateSKU:       m.WillUpdateSKU,
			WillUpdatePrice:     m.WillUpdatePrice,
		}
		if m.WillUpdatePrice {
			resp.PriceDifference = m.PriceDifference.String()
		}
		if m.IntendedSellingPrice != nil {
			price := m.IntendedSellingPrice.StringFixed(2)
			resp.IntendedSellingPrice = &price
		}
		out = append(out, resp)
	}
	return out
}

func newMappingRecordResponses(records []integration.MappingRecord) []MappingRecordResponse {
	out := make([]MappingRecordResponse, 0, len(records))
	for _, r := range records {
		resp := MappingRecordResponse{
			ID:               r.ID.String(),
			QuoteID:          r.QuoteID.String(),
			QuoteVariantSKU:  r.QuoteVariantSKU,
			ShopifyProductID: r.ShopifyProductID,
			ShopifyVariantID: r.ShopifyVariantID,
			SKUChanged:       r.SKUChanged,
			PriceChanged:     r.PriceChanged,
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        r.UpdatedAt,
		}
		if r.IntendedPrice != nil {
			price := r.IntendedPrice.StringFixed(2)
			resp.IntendedPrice = &price
		}
		out = append(out, resp)
	}
	return out
}
