// Package analytics holds the pure statistical engine: possession estimates,
// window aggregation and the team and player advanced metrics.
package analytics

import "math"

// SafeDiv returns num/den, or 0 when den is 0 or the result is not finite.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return finite(num / den)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
