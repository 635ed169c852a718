package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/revoa/backend/internal/domain/quote"
	"github.com/revoa/backend/internal/infrastructure/persistence/models"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote by its ID
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quote.ErrQuoteNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMerchant finds all quotes owned by a merchant, newest first
func (r *GormQuoteRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*quote.Quote, error) {
	var quoteModels []models.QuoteModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, len(quoteModels))
	for i := range quoteModels {
		quotes[i] = quoteModels[i].ToDomain()
	}
	return quotes, nil
}

// Save creates or updates a quote
func (r *GormQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	model := models.QuoteModelFromDomain(q)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a quote by ID
func (r *GormQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.QuoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return quote.ErrQuoteNotFound
	}
	return nil
}

// Ensure GormQuoteRepository implements QuoteRepository
var _ quote.QuoteRepository = (*GormQuoteRepository)(nil)
