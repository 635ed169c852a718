package quote

import (
	"context"

	"github.com/google/uuid"
)

// QuoteRepository defines the persistence interface for quotes
type QuoteRepository interface {
	// FindByID finds a quote by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// FindByMerchant lists all quotes owned by a merchant, most recent first
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*Quote, error)

	// Save creates or updates a quote
	Save(ctx context.Context, q *Quote) error

	// Delete deletes a quote
	Delete(ctx context.Context, id uuid.UUID) error
}
