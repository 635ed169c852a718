package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/revoa/backend/internal/domain/integration"
	"github.com/revoa/backend/internal/domain/quote"
	"github.com/revoa/backend/internal/domain/shared"
	"github.com/revoa/backend/internal/interfaces/http/dto"
	"github.com/revoa/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getMerchantID extracts the merchant ID from the X-Merchant-ID header
func getMerchantID(c *gin.Context) (uuid.UUID, error) {
	merchantIDStr := c.GetHeader("X-Merchant-ID")
	if merchantIDStr == "" {
		// Default development merchant for single-tenant setups
		return uuid.MustParse("00000000-0000-0000-0000-000000000001"), nil
	}
	return uuid.Parse(merchantIDStr)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := middleware.GetRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Conflict sends a 409 conflict response
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.Error(c, http.StatusConflict, dto.ErrCodeConflict, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	requestID := middleware.GetRequestID(c)
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	))
}

// sentinelErrorCode maps known domain sentinel errors to API error codes
func sentinelErrorCode(err error) (string, bool) {
	switch {
	case errors.Is(err, quote.ErrQuoteNotFound),
		errors.Is(err, quote.ErrVariantNotFound),
		errors.Is(err, integration.ErrProductNotFound),
		errors.Is(err, integration.ErrVariantNotFound),
		errors.Is(err, integration.ErrMappingRecordNotFound):
		return dto.ErrCodeNotFound, true

	case errors.Is(err, quote.ErrDuplicateSKU):
		return dto.ErrCodeAlreadyExists, true

	case errors.Is(err, quote.ErrEmptyTitle),
		errors.Is(err, quote.ErrEmptySKU),
		errors.Is(err, quote.ErrNegativeCost),
		errors.Is(err, quote.ErrNonPositiveCost),
		errors.Is(err, quote.ErrNegativeShippingRate),
		errors.Is(err, quote.ErrInvalidQuantityTier),
		errors.Is(err, quote.ErrEmptyVariantName),
		errors.Is(err, quote.ErrEmptyVariantValues),
		errors.Is(err, integration.ErrUnknownExternalVariant),
		errors.Is(err, integration.ErrQuoteIndexOutOfRange),
		errors.Is(err, integration.ErrMappingInvalidQuoteID),
		errors.Is(err, integration.ErrMappingEmptySKU):
		return dto.ErrCodeBusinessRule, true

	case errors.Is(err, integration.ErrPlatformRequestFailed),
		errors.Is(err, integration.ErrPlatformInvalidResponse):
		return dto.ErrCodeUpstreamFailed, true

	case errors.Is(err, integration.ErrPlatformRateLimited):
		return dto.ErrCodeUpstreamRateLimited, true

	case errors.Is(err, integration.ErrPlatformNotConfigured):
		return dto.ErrCodeUpstreamNotConfigured, true
	}
	return "", false
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	requestID := middleware.GetRequestID(c)

	if code, ok := sentinelErrorCode(err); ok {
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, err.Error(), requestID))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
