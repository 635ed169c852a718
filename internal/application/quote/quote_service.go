package quote

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revoa/backend/internal/domain/quote"
	"github.com/revoa/backend/internal/domain/shared"
)

// QuoteService coordinates quote authoring: combination preview,
// pricing and shipping evaluation, and quote persistence.
type QuoteService struct {
	quotes quote.QuoteRepository
	events shared.EventPublisher
	logger *zap.Logger
}

func NewQuoteService(quotes quote.QuoteRepository, events shared.EventPublisher, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		quotes: quotes,
		events: events,
		logger: logger,
	}
}

// publishEvents delivers the aggregate's pending events and clears
// them. Called only after a successful save.
func (s *QuoteService) publishEvents(ctx context.Context, q *quote.Quote) {
	if s.events != nil {
		if err := s.events.Publish(ctx, q.GetDomainEvents()...); err != nil {
			s.logger.Warn("failed to publish domain events",
				zap.String("quote_id", q.ID.String()),
				zap.Error(err))
		}
	}
	q.ClearDomainEvents()
}

// CreateQuote creates an empty draft quote for the merchant.
func (s *QuoteService) CreateQuote(ctx context.Context, merchantID uuid.UUID, title string) (*quote.Quote, error) {
	q, err := quote.NewQuote(merchantID, title)
	if err != nil {
		return nil, err
	}

	if err := s.quotes.Save(ctx, q); err != nil {
		s.logger.Error("failed to save quote",
			zap.String("merchant_id", merchantID.String()),
			zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, q)

	return q, nil
}

// GetQuote returns the quote if it exists and belongs to the merchant.
func (s *QuoteService) GetQuote(ctx context.Context, merchantID, quoteID uuid.UUID) (*quote.Quote, error) {
	q, err := s.quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.MerchantID != merchantID {
		return nil, quote.ErrQuoteNotFound
	}
	return q, nil
}

// ListQuotes returns all quotes owned by the merchant.
func (s *QuoteService) ListQuotes(ctx context.Context, merchantID uuid.UUID) ([]*quote.Quote, error) {
	return s.quotes.FindByMerchant(ctx, merchantID)
}

// DeleteQuote removes a quote after verifying ownership.
func (s *QuoteService) DeleteQuote(ctx context.Context, merchantID, quoteID uuid.UUID) error {
	if _, err := s.GetQuote(ctx, merchantID, quoteID); err != nil {
		return err
	}
	return s.quotes.Delete(ctx, quoteID)
}

// ReplaceVariants swaps the quote's variant list for the given set.
func (s *QuoteService) ReplaceVariants(ctx context.Context, merchantID, quoteID uuid.UUID, inputs []VariantInput) (*quote.Quote, error) {
	q, err := s.GetQuote(ctx, merchantID, quoteID)
	if err != nil {
		return nil, err
	}

	if err := q.ReplaceVariants(toDomainVariants(inputs)); err != nil {
		return nil, err
	}

	if err := s.quotes.Save(ctx, q); err != nil {
		s.logger.Error("failed to save quote variants",
			zap.String("quote_id", quoteID.String()),
			zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, q)

	return q, nil
}

// PreviewCombinations expands the declared axes into the full
// combination set. Axes with a blank name or no usable values are
// skipped rather than failing the whole preview.
func (s *QuoteService) PreviewCombinations(axes []VariantAxisInput) []quote.Combination {
	types := make([]quote.VariantType, 0, len(axes))
	for _, axis := range axes {
		vt, err := quote.NewVariantType(axis.Name, axis.Values)
		if err != nil {
			continue
		}
		types = append(types, *vt)
	}
	return quote.GenerateCombinations(types)
}

// SuggestPrice returns the charm-priced selling price suggestion for a
// unit cost.
func (s *QuoteService) SuggestPrice(cost decimal.Decimal) (decimal.Decimal, error) {
	return quote.SuggestPrice(cost)
}

// EvaluateShipping validates the rules and returns the shipping total
// for the given quantity and destination.
func (s *QuoteService) EvaluateShipping(rules quote.ShippingRules, quantity int, countryCode string) (decimal.Decimal, error) {
	normalized := quote.NewShippingRules(rules.Default, rules.ByCountry, rules.ByQuantity)
	if err := normalized.Validate(); err != nil {
		return decimal.Zero, err
	}
	return normalized.Evaluate(quantity, countryCode), nil
}
