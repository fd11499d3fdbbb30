// Package markup computes fixed-percentage selling price tiers from
// supplier unit costs.
package markup

import (
	"math"

	"github.com/shopspring/decimal"
)

// Rate pairs a markup percentage with its output column label.
type Rate struct {
	Percentage float64
	Label      string
}

// Rates are the fixed markup tiers, in column emission order.
var Rates = []Rate{
	{Percentage: 0.05, Label: "5% Markup"},
	{Percentage: 0.10, Label: "10% Markup"},
	{Percentage: 0.15, Label: "15% Markup"},
	{Percentage: 0.20, Label: "20% Markup"},
	{Percentage: 0.30, Label: "30% Markup"},
}

// Calculate returns cost * (1 + rate) rounded half-up to 2 decimal
// places. The second return value is false when cost or rate is not a
// finite number, or either is negative. Zero is a valid cost.
func Calculate(cost, rate float64) (float64, bool) {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, false
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, false
	}
	if cost < 0 || rate < 0 {
		return 0, false
	}

	// Decimal arithmetic keeps e.g. 150.50 * 1.05 at exactly 158.025
	// before rounding, where float64 would drift below the .5 boundary.
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate))
	result, _ := decimal.NewFromFloat(cost).Mul(multiplier).Round(2).Float64()
	return result, true
}
