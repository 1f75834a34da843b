package calculation

import "math"

// MonthlyRate converts an annual percentage into the equivalent compound monthly rate.
// Rates that cannot be converted (below -100%) yield 0, i.e. no growth.
func MonthlyRate(annualPct float64) float64 {
	r := math.Pow(1+annualPct/100, 1.0/12) - 1
	if !isFinite(r) {
		return 0
	}
	return r
}

// growthFactor returns (1+rate)^periods, or 1 when the result is not a usable number.
func growthFactor(rate float64, periods int) float64 {
	f := math.Pow(1+rate, float64(periods))
	if !isFinite(f) || f == 0 {
		return 1
	}
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
