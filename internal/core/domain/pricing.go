package domain

import "math"

// Tax rates applied on top of a spare part's base price.
const (
	GSTRate  = 0.09
	CGSTRate = 0.04
)

// PriceLines is the priced breakdown of a booking: the base price, the two
// tax lines and the tax-inclusive total, each rounded to 2 decimal places.
type PriceLines struct {
	Base  float64 `json:"base"`
	GST   float64 `json:"gst"`
	CGST  float64 `json:"cgst"`
	Total float64 `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceBreakdown computes the tax lines for a base price.
func PriceBreakdown(basePrice float64) PriceLines {
	return PriceLines{
		Base:  round2(basePrice),
		GST:   round2(GSTRate * basePrice),
		CGST:  round2(CGSTRate * basePrice),
		Total: ComputeTotal(basePrice),
	}
}

// ComputeTotal returns base + 9% GST + 4% CGST rounded to 2 decimal places.
func ComputeTotal(basePrice float64) float64 {
	return round2(basePrice + GSTRate*basePrice + CGSTRate*basePrice)
}
