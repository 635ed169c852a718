package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	integrationapp "github.com/revoa/backend/internal/application/integration"
)

// SyncHandler handles Shopify reconciliation and sync API endpoints
type SyncHandler struct {
	BaseHandler
	syncService *integrationapp.SyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *integrationapp.SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// Reconcile pairs the quote's variants with the live product's variants
// and returns the reviewable mapping set
func (h *SyncHandler) Reconcile(c *gin.Context) {
	merchantID, err := getMerchantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid merchant ID")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	in := integrationapp.ReconcileInput{
		QuoteID:          quoteID,
		ShopifyProductID: req.ShopifyProductID,
	}
	for _, o := range req.Overrides {
		in.Overrides = append(in.Overrides, integrationapp.MappingOverride{
			ExternalVariantID: o.ExternalVariantID,
			QuoteVariantIndex: o.QuoteVariantIndex,
		})
	}
	if len(req.IntendedPrices) > 0 {
		in.IntendedPrices = make(map[int]decimal.Decimal, len(req.IntendedPrices))
		for idx, price := range req.IntendedPrices {
			in.IntendedPrices[idx] = decimal.NewFromFloat(price)
		}
	}

	result, err := h.syncService.Reconcile(c.Request.Context(), merchantID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ReconcileResponse{
		Product:          newExternalProductResponse(result.Product),
		Mappings:         newVariantMappingResponses(result.Mappings),
		UnmappedCount:    result.UnmappedCount,
		PriceChangeCount: result.PriceChangeCount,
	})
}

// Commit persists the reviewed mappings and pushes price updates
func (h *SyncHandler) Commit(c *gin.Context) {
	merchantID, err := getMerchantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid merchant ID")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.syncService.Commit(c.Request.Context(), merchantID, integrationapp.CommitInput{
		QuoteID:          quoteID,
		ShopifyProductID: req.ShopifyProductID,
		Mappings:         req.toDomainMappings(),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, CommitResponse{
		PersistedCount:      result.PersistedCount,
		PriceUpdateCount:    result.PriceUpdateCount,
		PriceUpdateFailures: result.PriceUpdateFailures,
	})
}

// ListMappings returns the persisted mapping records for a quote
func (h *SyncHandler) ListMappings(c *gin.Context) {
	merchantID, err := getMerchantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid merchant ID")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	records, err := h.syncService.Mappings(c.Request.Context(), merchantID, quoteID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, newMappingRecordResponses(records))
}
