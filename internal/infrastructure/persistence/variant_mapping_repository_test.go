package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/revoa/backend/internal/domain/integration"
)

// VariantMappingModelSQLite is a SQLite-compatible version of
// VariantMappingModel for testing
type VariantMappingModelSQLite struct {
	ID               string `gorm:"primaryKey"`
	MerchantID       string `gorm:"index;not null"`
	QuoteID          string `gorm:"not null;uniqueIndex:idx_variant_mappings_quote_sku,priority:1"`
	QuoteVariantSKU  string `gorm:"not null;uniqueIndex:idx_variant_mappings_quote_sku,priority:2"`
	ShopifyProductID string `gorm:"not null"`
	ShopifyVariantID string `gorm:"not null"`
	IntendedPrice    *string
	SKUChanged       bool `gorm:"not null;default:false"`
	PriceChanged     bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (VariantMappingModelSQLite) TableName() string {
	return "variant_mappings"
}

func setupVariantMappingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&VariantMappingModelSQLite{})
	require.NoError(t, err)

	return db
}

func testMappingRecord(t *testing.T, quoteID uuid.UUID, sku string) *integration.MappingRecord {
	t.Helper()
	price := decimal.RequireFromString("27.99")
	record, err := integration.NewMappingRecord(uuid.New(), quoteID, "100", integration.VariantMapping{
		QuoteVariantSKU:      sku,
		ShopifyVariantID:     "11",
		WillUpdateSKU:        true,
		WillUpdatePrice:      true,
		IntendedSellingPrice: &price,
	})
	require.NoError(t, err)
	return record
}

func TestGormVariantMappingRepository_Upsert(t *testing.T) {
	db := setupVariantMappingTestDB(t)
	repo := NewGormVariantMappingRepository(db)
	ctx := context.Background()

	t.Run("inserts new record", func(t *testing.T) {
		quoteID := uuid.New()
		record := testMappingRecord(t, quoteID, "TOTE-RED-S")

		require.NoError(t, repo.Upsert(ctx, record))

		found, err := repo.FindByQuote(ctx, quoteID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "TOTE-RED-S", found[0].QuoteVariantSKU)
		assert.True(t, found[0].SKUChanged)
		require.NotNil(t, found[0].IntendedPrice)
		assert.True(t, found[0].IntendedPrice.Equal(decimal.RequireFromString("27.99")))
	})

	t.Run("second upsert with same key updates in place", func(t *testing.T) {
		quoteID := uuid.New()
		first := testMappingRecord(t, quoteID, "TOTE-RED-M")
		require.NoError(t, repo.Upsert(ctx, first))

		updated := testMappingRecord(t, quoteID, "TOTE-RED-M")
		newPrice := decimal.RequireFromString("31.99")
		updated.IntendedPrice = &newPrice
		updated.ShopifyVariantID = "12"
		require.NoError(t, repo.Upsert(ctx, updated))

		found, err := repo.FindByQuote(ctx, quoteID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "12", found[0].ShopifyVariantID)
		assert.True(t, found[0].IntendedPrice.Equal(newPrice))
	})
}

func TestGormVariantMappingRepository_FindByQuote(t *testing.T) {
	db := setupVariantMappingTestDB(t)
	repo := NewGormVariantMappingRepository(db)
	ctx := context.Background()

	t.Run("returns records in SKU order", func(t *testing.T) {
		quoteID := uuid.New()
		require.NoError(t, repo.Upsert(ctx, testMappingRecord(t, quoteID, "B-SKU")))
		require.NoError(t, repo.Upsert(ctx, testMappingRecord(t, quoteID, "A-SKU")))

		found, err := repo.FindByQuote(ctx, quoteID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "A-SKU", found[0].QuoteVariantSKU)
		assert.Equal(t, "B-SKU", found[1].QuoteVariantSKU)
	})

	t.Run("empty result for unknown quote", func(t *testing.T) {
		found, err := repo.FindByQuote(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestGormVariantMappingRepository_DeleteByQuote(t *testing.T) {
	db := setupVariantMappingTestDB(t)
	repo := NewGormVariantMappingRepository(db)
	ctx := context.Background()

	t.Run("removes only the quote's records", func(t *testing.T) {
		quoteID := uuid.New()
		otherID := uuid.New()
		require.NoError(t, repo.Upsert(ctx, testMappingRecord(t, quoteID, "TOTE-RED-S")))
		require.NoError(t, repo.Upsert(ctx, testMappingRecord(t, otherID, "TOTE-RED-S")))

		require.NoError(t, repo.DeleteByQuote(ctx, quoteID))

		found, err := repo.FindByQuote(ctx, quoteID)
		require.NoError(t, err)
		assert.Empty(t, found)

		kept, err := repo.FindByQuote(ctx, otherID)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})
}
