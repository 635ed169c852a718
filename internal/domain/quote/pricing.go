package quote

import (
	"github.com/shopspring/decimal"
)

// Pricing constants. The minimum margin is an absolute dollar floor,
// not a percentage: a suggested price never yields less than $20 over
// unit cost.
var (
	minimumMargin = decimal.NewFromInt(20)
	charmOffset   = decimal.NewFromFloat(0.01)
	charmCents    = decimal.NewFromFloat(0.99)
	charmCutoff   = decimal.NewFromFloat(0.51)

	multiplierLow  = decimal.NewFromInt(3)              // cost <= 50
	multiplierMid  = decimal.NewFromFloat(2.5)          // 50 < cost <= 100
	multiplierHigh = decimal.NewFromInt(2)              // cost > 100
	bracketMid     = decimal.NewFromInt(50)
	bracketHigh    = decimal.NewFromInt(100)
	charmTen       = decimal.NewFromInt(10)
)

// SuggestPrice computes a charm-priced suggested selling price from the
// unit cost. The multiplier shrinks as cost grows, the raw price is
// rounded to a psychological ending, and the result is re-charmed from
// cost+$20 when the margin floor would otherwise be violated.
func SuggestPrice(cost decimal.Decimal) (decimal.Decimal, error) {
	if !cost.IsPositive() {
		return decimal.Zero, ErrNonPositiveCost
	}

	multiplier := multiplierLow
	switch {
	case cost.GreaterThan(bracketHigh):
		multiplier = multiplierHigh
	case cost.GreaterThan(bracketMid):
		multiplier = multiplierMid
	}

	candidate := charmPrice(cost.Mul(multiplier))

	if candidate.Sub(cost).LessThan(minimumMargin) {
		candidate = charmPrice(cost.Add(minimumMargin))
	}

	return candidate, nil
}

// charmPrice rounds a price to a consumer-perception-friendly ending:
// prices under $10 round up to the next X.99; otherwise prices within
// $0.51 of the next integer snap down to ceil-0.01, and everything else
// snaps to floor+0.99.
func charmPrice(price decimal.Decimal) decimal.Decimal {
	ceil := price.Ceil()

	if price.LessThan(charmTen) {
		return ceil.Sub(charmOffset)
	}
	if price.GreaterThan(ceil.Sub(charmCutoff)) {
		return ceil.Sub(charmOffset)
	}
	return price.Floor().Add(charmCents)
}
