package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/revoa/backend/internal/domain/quote"
	"github.com/revoa/backend/internal/domain/shared"
)

// QuoteModel is the persistence model for the Quote aggregate. Variants
// are stored as a jsonb document: they are always read and written as a
// whole with their owning quote.
type QuoteModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	MerchantID       uuid.UUID `gorm:"type:uuid;not null;index:idx_quotes_merchant"`
	Title            string    `gorm:"type:varchar(255);not null"`
	ShopifyProductID string    `gorm:"type:varchar(100);index"`
	Status           string    `gorm:"type:varchar(20);not null;default:'draft'"`
	VariantsJSON     string    `gorm:"type:jsonb;column:variants"`
	Version          int       `gorm:"not null;default:1"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the persistence model to a domain Quote aggregate.
func (m *QuoteModel) ToDomain() *quote.Quote {
	q := &quote.Quote{
		MerchantAggregateRoot: shared.MerchantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			MerchantID: m.MerchantID,
		},
		Title:            m.Title,
		ShopifyProductID: m.ShopifyProductID,
		Status:           quote.QuoteStatus(m.Status),
		Variants:         make([]quote.QuoteVariant, 0),
	}

	if m.VariantsJSON != "" {
		var variants []quote.QuoteVariant
		if err := json.Unmarshal([]byte(m.VariantsJSON), &variants); err == nil {
			q.Variants = variants
		}
	}

	return q
}

// FromDomain populates the persistence model from a domain Quote aggregate.
func (m *QuoteModel) FromDomain(q *quote.Quote) {
	m.ID = q.ID
	m.MerchantID = q.MerchantID
	m.Title = q.Title
	m.ShopifyProductID = q.ShopifyProductID
	m.Status = string(q.Status)
	m.Version = q.Version
	m.CreatedAt = q.CreatedAt
	m.UpdatedAt = q.UpdatedAt

	if len(q.Variants) > 0 {
		if jsonBytes, err := json.Marshal(q.Variants); err == nil {
			m.VariantsJSON = string(jsonBytes)
		}
	} else {
		m.VariantsJSON = "[]"
	}
}

// QuoteModelFromDomain creates a new persistence model from a domain Quote aggregate.
func QuoteModelFromDomain(q *quote.Quote) *QuoteModel {
	m := &QuoteModel{}
	m.FromDomain(q)
	return m
}
