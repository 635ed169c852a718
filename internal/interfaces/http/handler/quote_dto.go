package handler

import (
	"time"

	"github.com/shopspring/decimal"

	quoteapp "github.com/revoa/backend/internal/application/quote"
	"github.com/revoa/backend/internal/domain/quote"
)

// CreateQuoteRequest represents a request to create a new quote
type CreateQuoteRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Canvas Tote Bag"`
}

// VariantAttributeRequest is one axis assignment on a submitted variant
type VariantAttributeRequest struct {
	Name  string `json:"name" binding:"required" example:"Color"`
	Value string `json:"value" binding:"required" example:"Red"`
}

// QuantityTierRequest is one quantity-based shipping discount tier
type QuantityTierRequest struct {
	MinQty         int     `json:"min_qty" binding:"required,min=1" example:"10"`
	DiscountAmount float64 `json:"discount_amount" binding:"min=0" example:"5.00"`
}

// ShippingRulesRequest is the three-level shipping rule set for a variant
type ShippingRulesRequest struct {
	Default    float64               `json:"default" binding:"min=0" example:"2.90"`
	ByCountry  map[string]float64    `json:"by_country"`
	ByQuantity []QuantityTierRequest `json:"by_quantity" binding:"omitempty,dive"`
}

func (r ShippingRulesRequest) toDomain() quote.ShippingRules {
	var byCountry map[string]decimal.Decimal
	if len(r.ByCountry) > 0 {
		byCountry = make(map[string]decimal.Decimal, len(r.ByCountry))
		for country, rate := range r.ByCountry {
			byCountry[country] = decimal.NewFromFloat(rate)
		}
	}

	tiers := make([]quote.QuantityTier, 0, len(r.ByQuantity))
	for _, t := range r.ByQuantity {
		tiers = append(tiers, quote.QuantityTier{
			MinQty:         t.MinQty,
			DiscountAmount: decimal.NewFromFloat(t.DiscountAmount),
		})
	}

	return quote.NewShippingRules(decimal.NewFromFloat(r.Default), byCountry, tiers)
}

// QuoteVariantRequest is one variant in a replace-variants request
type QuoteVariantRequest struct {
	Name        string                    `json:"name" binding:"max=255" example:"Red - S"`
	SKU         string                    `json:"sku" binding:"required,min=1,max=100" example:"TOTE-RED-S"`
	CostPerItem float64                   `json:"cost_per_item" binding:"min=0" example:"8.00"`
	Attributes  []VariantAttributeRequest `json:"attributes" binding:"omitempty,dive"`
	Shipping    ShippingRulesRequest      `json:"shipping"`
}

// ReplaceVariantsRequest replaces a quote's full variant list
type ReplaceVariantsRequest struct {
	Variants []QuoteVariantRequest `json:"variants" binding:"required,dive"`
}

func (r ReplaceVariantsRequest) toInputs() []quoteapp.VariantInput {
	inputs := make([]quoteapp.VariantInput, 0, len(r.Variants))
	for _, v := range r.Variants {
		attrs := make([]quote.ProductAttribute, 0, len(v.Attributes))
		for _, a := range v.Attributes {
			attrs = append(attrs, quote.ProductAttribute{Name: a.Name, Value: a.Value})
		}
		inputs = append(inputs, quoteapp.VariantInput{
			Name:        v.Name,
			SKU:         v.SKU,
			CostPerItem: decimal.NewFromFloat(v.CostPerItem),
			Attributes:  attrs,
			Shipping:    v.Shipping.toDomain(),
		})
	}
	return inputs
}

// VariantAxisRequest is one declared variant axis for combination preview
type VariantAxisRequest struct {
	Name   string   `json:"name" example:"Color"`
	Values []string `json:"values" example:"Red,Blue"`
}

// PreviewCombinationsRequest expands declared axes into combinations
type PreviewCombinationsRequest struct {
	Axes []VariantAxisRequest `json:"axes" binding:"required"`
}

// SuggestPriceRequest asks for a charm-priced selling price suggestion
type SuggestPriceRequest struct {
	Cost float64 `json:"cost" binding:"required,gt=0" example:"8.00"`
}

// EvaluateShippingRequest resolves shipping cost for a quantity and destination
type EvaluateShippingRequest struct {
	Shipping    ShippingRulesRequest `json:"shipping"`
	Quantity    int                  `json:"quantity" binding:"min=0" example:"2"`
	CountryCode string               `json:"country_code" binding:"max=2" example:"US"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// VariantAttributeResponse is one axis assignment on a variant
type VariantAttributeResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// QuantityTierResponse is one quantity discount tier
type QuantityTierResponse struct {
	MinQty         int    `json:"min_qty"`
	DiscountAmount string `json:"discount_amount"`
}

// ShippingRulesResponse is the shipping rule set on a variant
type ShippingRulesResponse struct {
	Default    string                 `json:"default"`
	ByCountry  map[string]string      `json:"by_country,omitempty"`
	ByQuantity []QuantityTierResponse `json:"by_quantity,omitempty"`
}

// QuoteVariantResponse is one variant within a quote response
type QuoteVariantResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	SKU         string                     `json:"sku"`
	CostPerItem string                     `json:"cost_per_item"`
	Attributes  []VariantAttributeResponse `json:"attributes"`
	Shipping    ShippingRulesResponse      `json:"shipping"`
}

// QuoteResponse is the API view of a quote
type QuoteResponse struct {
	ID               string                 `json:"id"`
	MerchantID       string                 `json:"merchant_id"`
	Title            string                 `json:"title"`
	ShopifyProductID string                 `json:"shopify_product_id,omitempty"`
	Status           string                 `json:"status"`
	Variants         []QuoteVariantResponse `json:"variants"`
	Version          int                    `json:"version"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// CombinationResponse is one expanded variant combination
type CombinationResponse struct {
	Key        string                     `json:"key"`
	Label      string                     `json:"label"`
	Attributes []VariantAttributeResponse `json:"attributes"`
}

// SuggestPriceResponse carries the price suggestion for a unit cost
type SuggestPriceResponse struct {
	Cost           string `json:"cost"`
	SuggestedPrice string `json:"suggested_price"`
}

// ShippingCostResponse carries the evaluated shipping total
type ShippingCostResponse struct {
	Quantity    int    `json:"quantity"`
	CountryCode string `json:"country_code,omitempty"`
	Cost        string `json:"cost"`
}

func newShippingRulesResponse(rules quote.ShippingRules) ShippingRulesResponse {
	resp := ShippingRulesResponse{
		Default: rules.Default.String(),
	}
	if len(rules.ByCountry) > 0 {
		resp.ByCountry = make(map[string]string, len(rules.ByCountry))
		for country, rate := range rules.ByCountry {
			resp.ByCountry[country] = rate.String()
		}
	}
	for _, t := range rules.ByQuantity {
		resp.ByQuantity = append(resp.ByQuantity, QuantityTierResponse{
			MinQty:         t.MinQty,
			DiscountAmount: t.DiscountAmount.String(),
		})
	}
	return resp
}

func newAttributeResponses(attrs []quote.ProductAttribute) []VariantAttributeResponse {
	out := make([]VariantAttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, VariantAttributeResponse{Name: a.Name, Value: a.Value})
	}
	return out
}

func newQuoteResponse(q *quote.Quote) QuoteResponse {
	variants := make([]QuoteVariantResponse, 0, len(q.Variants))
	for _, v := range q.Variants {
		variants = append(variants, QuoteVariantResponse{
			ID:          v.ID.String(),
			Name:        v.Name,
			SKU:         v.SKU,
			CostPerItem: v.CostPerItem.String(),
			Attributes:  newAttributeResponses(v.Attributes),
			Shipping:    newShippingRulesResponse(v.Shipping),
		})
	}

	return QuoteResponse{
		ID:               q.ID.String(),
		MerchantID:       q.MerchantID.String(),
		Title:            q.Title,
		ShopifyProductID: q.ShopifyProductID,
		Status:           string(q.Status),
		Variants:         variants,
		Version:          q.Version,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func newCombinationResponses(combos []quote.Combination) []CombinationResponse {
	out := make([]CombinationResponse, 0, len(combos))
	for _, c := range combos {
		out = append(out, CombinationResponse{
			Key:        c.Key,
			Label:      c.Label,
			Attributes: newAttributeResponses(c.Attributes),
		})
	}
	return out
}
