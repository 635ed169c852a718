package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	quoteapp "github.com/revoa/backend/internal/application/quote"
)

// QuoteHandler handles quote authoring API endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *quoteapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *quoteapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Create creates a new draft quote for the merchant
func (h *QuoteHandler) Create(c *gin.Context) {
	merchantID, err := getMerchantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid merchant ID")
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	q, err := h.quoteService.CreateQuote(c.Request.Context(), merchantID, req.Title)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, newQuoteResponse(q))
}

// List returns all quotes owned by the merchant
func (h *QuoteHandler) List(c *gin.Context) {
	merchantID, err := getMerchantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid merchant ID")
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), merchantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		responses = append(responses, newQuoteResponse(q))
	}

	h.Success(c, responses)
}

// GetByID returns a single quote by ID
func (h *QuoteHandler) GetByID(c *gin.Context) {
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

	q, err := h.quoteService.GetQuote(c.Request.Context(), merchantID, quoteID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, newQuoteResponse(q))
}

// Delete removes a quote
func (h *QuoteHandler) Delete(c *gin.Context) {
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

	if err := h.quoteService.DeleteQuote(c.Request.Context(), merchantID, quoteID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ReplaceVariants swaps the quote's variant list for the submitted set
func (h *QuoteHandler) ReplaceVariants(c *gin.Context) {
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

	var req ReplaceVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	q, err := h.quoteService.ReplaceVariants(c.Request.Context(), merchantID, quoteID, req.toInputs())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, newQuoteResponse(q))
}

// PreviewCombinations expands the declared axes into the full
// combination set without persisting anything
func (h *QuoteHandler) PreviewCombinations(c *gin.Context) {
	var req PreviewCombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	axes := make([]quoteapp.VariantAxisInput, 0, len(req.Axes))
	for _, a := range req.Axes {
		axes = append(axes, quoteapp.VariantAxisInput{Name: a.Name, Values: a.Values})
	}

	combos := h.quoteService.PreviewCombinations(axes)

	h.Success(c, newCombinationResponses(combos))
}

// SuggestPrice returns the charm-priced selling price for a unit cost
func (h *QuoteHandler) SuggestPrice(c *gin.Context) {
	var req SuggestPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cost := decimal.NewFromFloat(req.Cost)
	price, err := h.quoteService.SuggestPrice(cost)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, SuggestPriceResponse{
		Cost:           cost.String(),
		SuggestedPrice: price.StringFixed(2),
	})
}

// EvaluateShipping resolves the shipping total for a quantity and destination
func (h *QuoteHandler) EvaluateShipping(c *gin.Context) {
	var req EvaluateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cost, err := h.quoteService.EvaluateShipping(req.Shipping.toDomain(), req.Quantity, req.CountryCode)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ShippingCostResponse{
		Quantity:    req.Quantity,
		CountryCode: req.CountryCode,
		Cost:        cost.StringFixed(2),
	})
}
