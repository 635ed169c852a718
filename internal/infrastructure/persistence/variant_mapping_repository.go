package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/revoa/backend/internal/domain/integration"
	"github.com/revoa/backend/internal/infrastructure/persistence/models"
)

// GormVariantMappingRepository implements VariantMappingRepository using GORM
type GormVariantMappingRepository struct {
	db *gorm.DB
}

// NewGormVariantMappingRepository creates a new GormVariantMappingRepository
func NewGormVariantMappingRepository(db *gorm.DB) *GormVariantMappingRepository {
	return &GormVariantMappingRepository{db: db}
}

// Upsert inserts or updates a mapping record keyed by (quote_id, quote_variant_sku)
func (r *GormVariantMappingRepository) Upsert(ctx context.Context, record *integration.MappingRecord) error {
	model := models.VariantMappingModelFromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "quote_id"}, {Name: "quote_variant_sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"shopify_product_id",
				"shopify_variant_id",
				"intended_price",
				"sku_changed",
				"price_changed",
				"updated_at",
			}),
		}).
		Create(model).Error
}

// FindByQuote returns all mapping records for a quote in SKU order
func (r *GormVariantMappingRepository) FindByQuote(ctx context.Context, quoteID uuid.UUID) ([]integration.MappingRecord, error) {
	var mappingModels []models.VariantMappingModel
	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("quote_variant_sku ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	records := make([]integration.MappingRecord, len(mappingModels))
	for i := range mappingModels {
		records[i] = *mappingModels[i].ToDomain()
	}
	return records, nil
}

// DeleteByQuote removes all mapping records for a quote
func (r *GormVariantMappingRepository) DeleteByQuote(ctx context.Context, quoteID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.VariantMappingModel{}, "quote_id = ?", quoteID).Error
}

// Ensure GormVariantMappingRepository implements VariantMappingRepository
var _ integration.VariantMappingRepository = (*GormVariantMappingRepository)(nil)
