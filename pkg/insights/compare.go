package insights

import "math"

// PercentChange computes the rounded percent change from previous to
// current. A zero baseline is special-cased: new activity reads as +100%
// and no activity as 0%, instead of an undefined division.
func PercentChange(previous, current int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}
