package quote

import "errors"

var (
	ErrQuoteNotFound        = errors.New("quote: quote not found")
	ErrVariantNotFound      = errors.New("quote: variant not found")
	ErrEmptyTitle           = errors.New("quote: title cannot be empty")
	ErrEmptySKU             = errors.New("quote: variant SKU cannot be empty")
	ErrDuplicateSKU         = errors.New("quote: variant SKU already used in this quote")
	ErrNegativeCost         = errors.New("quote: cost per item cannot be negative")
	ErrNonPositiveCost      = errors.New("quote: cost must be positive")
	ErrNegativeShippingRate = errors.New("quote: shipping rate cannot be negative")
	ErrInvalidQuantityTier  = errors.New("quote: quantity tier requires min qty >= 1 and non-negative discount")
)
