package puzzle

import "math"

// Score returns the completion percentage round((total-penalties)/total*100),
// clamped to [0, 100]. Penalties are hints used plus incorrect attempts.
func Score(total, penalties int) int {
	if total <= 0 {
		return 100
	}
	penalties = max(penalties, 0)
	pct := math.Round(float64(total-penalties) / float64(total) * 100)
	return min(max(int(pct), 0), 100)
}
