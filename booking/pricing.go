package booking

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidPricing = errors.New("invalid pricing")

// Pricing is a cabin's nightly price and the flat discount taken off each night.
type Pricing struct {
	RegularPrice decimal.Decimal `json:"regularPrice"`
	Discount     decimal.Decimal `json:"discount"`
}

func (p Pricing) Validate() error {
	if p.RegularPrice.IsNegative() {
		return fmt.Errorf("%w: regular price %s is negative", ErrInvalidPricing, p.RegularPrice)
	}
	if p.Discount.IsNegative() {
		return fmt.Errorf("%w: discount %s is negative", ErrInvalidPricing, p.Discount)
	}
	if p.Discount.GreaterThan(p.RegularPrice) {
		return fmt.Errorf("%w: discount %s exceeds regular price %s", ErrInvalidPricing, p.Discount, p.RegularPrice)
	}
	return nil
}

// NightlyRate is the regular price less the discount.
func (p Pricing) NightlyRate() decimal.Decimal {
	return p.RegularPrice.Sub(p.Discount)
}

func (p Pricing) HasDiscount() bool {
	return p.Discount.IsPositive()
}

// SummaryKind tags a PriceSummary.
type SummaryKind int

const (
	// SummaryEmpty: no complete range, nothing to price.
	SummaryEmpty SummaryKind = iota
	// SummaryInsufficient: fewer nights than the minimum; show the minimum-stay notice.
	SummaryInsufficient
	SummaryPriced
	// SummaryExceedsMaximum: more nights than the maximum; no total is offered.
	SummaryExceedsMaximum
)

func (k SummaryKind) String() string {
	switch k {
	case SummaryEmpty:
		return "empty"
	case SummaryInsufficient:
		return "insufficient"
	case SummaryPriced:
		return "priced"
	case SummaryExceedsMaximum:
		return "exceeds_maximum"
	default:
		return fmt.Sprintf("SummaryKind(%d)", int(k))
	}
}

// PriceSummary is derived on every read and never stored. Total is zero unless Kind
// is SummaryPriced.
type PriceSummary struct {
	Kind         SummaryKind
	Nights       int
	NightlyRate  decimal.Decimal
	RegularPrice decimal.Decimal
	HasDiscount  bool
	Total        decimal.Decimal
	MinNights    int
	MaxNights    int
}

// Priced reports whether a total is available for display.
func (s PriceSummary) Priced() bool {
	return s.Kind == SummaryPriced
}

// DerivePricing prices the effective range under the stay policy.
func DerivePricing(effective Range, pricing Pricing, policy StayPolicy) PriceSummary {
	summary := PriceSummary{
		Kind:         SummaryEmpty,
		NightlyRate:  pricing.NightlyRate(),
		RegularPrice: pricing.RegularPrice,
		HasDiscount:  pricing.HasDiscount(),
		Total:        decimal.Zero,
		MinNights:    policy.MinNights,
		MaxNights:    policy.MaxNights,
	}

	nights := effective.Nights()
	switch policy.Check(nights) {
	case PolicyEmpty:
		return summary
	case PolicyBelowMinimum:
		summary.Kind = SummaryInsufficient
	case PolicyAboveMaximum:
		summary.Kind = SummaryExceedsMaximum
	case PolicyWithin:
		summary.Kind = SummaryPriced
		summary.Total = summary.NightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	}
	summary.Nights = nights
	return summary
}
