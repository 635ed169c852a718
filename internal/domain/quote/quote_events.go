package quote

import (
	"github.com/google/uuid"

	"github.com/revoa/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeQuote = "Quote"

// Event type constants
const (
	EventTypeQuoteCreated          = "QuoteCreated"
	EventTypeQuoteVariantsReplaced = "QuoteVariantsReplaced"
	EventTypeQuoteSynced           = "QuoteSynced"
)

// QuoteCreatedEvent is published when a new quote is created
type QuoteCreatedEvent struct {
	shared.BaseDomainEvent
	QuoteID uuid.UUID `json:"quote_id"`
	Title   string    `json:"title"`
}

// NewQuoteCreatedEvent creates a new QuoteCreatedEvent
func NewQuoteCreatedEvent(q *Quote) *QuoteCreatedEvent {
	return &QuoteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteCreated, AggregateTypeQuote, q.ID, q.MerchantID),
		QuoteID:         q.ID,
		Title:           q.Title,
	}
}

// QuoteVariantsReplacedEvent is published when the variant list is replaced
type QuoteVariantsReplacedEvent struct {
	shared.BaseDomainEvent
	QuoteID      uuid.UUID `json:"quote_id"`
	VariantCount int       `json:"variant_count"`
}

// NewQuoteVariantsReplacedEvent creates a new QuoteVariantsReplacedEvent
func NewQuoteVariantsReplacedEvent(q *Quote) *QuoteVariantsReplacedEvent {
	return &QuoteVariantsReplacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteVariantsReplaced, AggregateTypeQuote, q.ID, q.MerchantID),
		QuoteID:         q.ID,
		VariantCount:    len(q.Variants),
	}
}

// QuoteSyncedEvent is published when a quote is marked synced
type QuoteSyncedEvent struct {
	shared.BaseDomainEvent
	QuoteID          uuid.UUID `json:"quote_id"`
	ShopifyProductID string    `json:"shopify_product_id"`
}

// NewQuoteSyncedEvent creates a new QuoteSyncedEvent
func NewQuoteSyncedEvent(q *Quote) *QuoteSyncedEvent {
	return &QuoteSyncedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeQuoteSynced, AggregateTypeQuote, q.ID, q.MerchantID),
		QuoteID:          q.ID,
		ShopifyProductID: q.ShopifyProductID,
	}
}
