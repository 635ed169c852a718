package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/integration"
)

// VariantMappingModel is the persistence model for committed variant
// mapping records. The (quote_id, quote_variant_sku) pair is unique so
// re-running a commit updates records in place.
type VariantMappingModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	MerchantID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_variant_mappings_merchant"`
	QuoteID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_variant_mappings_quote_sku,priority:1"`
	QuoteVariantSKU  string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_variant_mappings_quote_sku,priority:2"`
	ShopifyProductID string           `gorm:"type:varchar(100);not null"`
	ShopifyVariantID string           `gorm:"type:varchar(100);not null;index"`
	IntendedPrice    *decimal.Decimal `gorm:"type:decimal(20,4)"`
	SKUChanged       bool             `gorm:"not null;default:false"`
	PriceChanged     bool             `gorm:"not null;default:false"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VariantMappingModel) TableName() string {
	return "variant_mappings"
}

// ToDomain converts the persistence model to a domain MappingRecord.
func (m *VariantMappingModel) ToDomain() *integration.MappingRecord {
	return &integration.MappingRecord{
		ID:               m.ID,
		MerchantID:       m.MerchantID,
		QuoteID:          m.QuoteID,
		QuoteVariantSKU:  m.QuoteVariantSKU,
		ShopifyProductID: m.ShopifyProductID,
		ShopifyVariantID: m.ShopifyVariantID,
		IntendedPrice:    m.IntendedPrice,
		SKUChanged:       m.SKUChanged,
		PriceChanged:     m.PriceChanged,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain MappingRecord.
func (m *VariantMappingModel) FromDomain(record *integration.MappingRecord) {
	m.ID = record.ID
	m.MerchantID = record.MerchantID
	m.QuoteID = record.QuoteID
	m.QuoteVariantSKU = record.QuoteVariantSKU
	m.ShopifyProductID = record.ShopifyProductID
	m.ShopifyVariantID = record.ShopifyVariantID
	m.IntendedPrice = record.IntendedPrice
	m.SKUChanged = record.SKUChanged
	m.PriceChanged = record.PriceChanged
	m.CreatedAt = record.CreatedAt
	m.UpdatedAt = record.UpdatedAt
}

// VariantMappingModelFromDomain creates a new persistence model from a domain MappingRecord.
func VariantMappingModelFromDomain(record *integration.MappingRecord) *VariantMappingModel {
	m := &VariantMappingModel{}
	m.FromDomain(record)
	return m
}
