package analytics

import "math"

// pct returns part/total*100, defined as 0 when total is 0. Results
// are not clamped: completed > attempted legitimately yields > 100,
// matching the permissiveness of the stored data.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
