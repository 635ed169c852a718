package integration

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/revoa/backend/internal/domain/integration"
	"github.com/revoa/backend/internal/domain/quote"
	"github.com/revoa/backend/internal/domain/shared"
)

// SyncService reconciles quote variants against live Shopify products
// and commits the reviewed mappings back to the catalog.
type SyncService struct {
	quotes   quote.QuoteRepository
	mappings integration.VariantMappingRepository
	catalog  integration.CatalogReader
	prices   integration.PriceUpdater
	events   shared.EventPublisher
	logger   *zap.Logger
}

func NewSyncService(
	quotes quote.QuoteRepository,
	mappings integration.VariantMappingRepository,
	catalog integration.CatalogReader,
	prices integration.PriceUpdater,
	events shared.EventPublisher,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		quotes:   quotes,
		mappings: mappings,
		catalog:  catalog,
		prices:   prices,
		events:   events,
		logger:   logger,
	}
}

// Reconcile fetches the live product and pairs its variants with the
// quote's variants: SKU match first, then positional pairing, then the
// merchant's manual overrides. A catalog fetch failure aborts the run;
// there is no stale fallback.
func (s *SyncService) Reconcile(ctx context.Context, merchantID uuid.UUID, in ReconcileInput) (*ReconcileResult, error) {
	q, err := s.ownedQuote(ctx, merchantID, in.QuoteID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProductWithVariants(ctx, in.ShopifyProductID)
	if err != nil {
		s.logger.Warn("catalog fetch failed",
			zap.String("shopify_product_id", in.ShopifyProductID),
			zap.Error(err))
		return nil, err
	}

	rec := integration.NewReconciliation(q.Variants, product)
	for _, o := range in.Overrides {
		if err := rec.Assign(o.ExternalVariantID, o.QuoteVariantIndex); err != nil {
			return nil, err
		}
	}

	mappings := rec.BuildMappings(in.IntendedPrices)

	return &ReconcileResult{
		Product:          product,
		Mappings:         mappings,
		UnmappedCount:    rec.UnmappedCount(),
		PriceChangeCount: integration.PriceChangeCount(mappings),
	}, nil
}

// Commit persists each mapping and pushes price updates sequentially.
// One mapping's failure never aborts the loop: the record upsert and
// the price push are attempted independently per mapping, and price
// failures are reported back by variant title. The quote is marked
// synced regardless of partial failures.
func (s *SyncService) Commit(ctx context.Context, merchantID uuid.UUID, in CommitInput) (*CommitResult, error) {
	q, err := s.ownedQuote(ctx, merchantID, in.QuoteID)
	if err != nil {
		return nil, err
	}

	result := &CommitResult{
		PriceUpdateFailures: make([]string, 0),
	}

	for _, m := range in.Mappings {
		record, err := integration.NewMappingRecord(merchantID, q.ID, in.ShopifyProductID, m)
		if err != nil {
			s.logger.Warn("skipping unpersistable mapping",
				zap.String("quote_id", q.ID.String()),
				zap.String("shopify_variant_id", m.ShopifyVariantID),
				zap.Error(err))
		} else if err := s.mappings.Upsert(ctx, record); err != nil {
			s.logger.Warn("mapping upsert failed",
				zap.String("quote_id", q.ID.String()),
				zap.String("quote_variant_sku", m.QuoteVariantSKU),
				zap.Error(err))
		} else {
			result.PersistedCount++
		}

		if !m.WillUpdatePrice || m.IntendedSellingPrice == nil {
			continue
		}
		if err := s.prices.UpdateVariantPrice(ctx, m.ShopifyVariantID, *m.IntendedSellingPrice); err != nil {
			s.logger.Warn("variant price update failed",
				zap.String("shopify_variant_id", m.ShopifyVariantID),
				zap.String("intended_price", m.IntendedSellingPrice.String()),
				zap.Error(err))
			result.PriceUpdateFailures = append(result.PriceUpdateFailures, m.ShopifyVariantTitle)
		} else {
			result.PriceUpdateCount++
		}
	}

	q.ConnectProduct(in.ShopifyProductID)
	q.MarkSynced()
	if err := s.quotes.Save(ctx, q); err != nil {
		// Mappings and prices already landed; losing the status flip is
		// recoverable on the next commit.
		s.logger.Error("failed to persist synced status",
			zap.String("quote_id", q.ID.String()),
			zap.Error(err))
	} else {
		if s.events != nil {
			if err := s.events.Publish(ctx, q.GetDomainEvents()...); err != nil {
				s.logger.Warn("failed to publish domain events",
					zap.String("quote_id", q.ID.String()),
					zap.Error(err))
			}
		}
		q.ClearDomainEvents()
	}

	return result, nil
}

// Mappings returns the persisted mapping records for a quote.
func (s *SyncService) Mappings(ctx context.Context, merchantID uuid.UUID, quoteID uuid.UUID) ([]integration.MappingRecord, error) {
	if _, err := s.ownedQuote(ctx, merchantID, quoteID); err != nil {
		return nil, err
	}
	return s.mappings.FindByQuote(ctx, quoteID)
}

func (s *SyncService) ownedQuote(ctx context.Context, merchantID, quoteID uuid.UUID) (*quote.Quote, error) {
	q, err := s.quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.MerchantID != merchantID {
		return nil, quote.ErrQuoteNotFound
	}
	return q, nil
}
