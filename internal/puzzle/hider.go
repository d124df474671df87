package puzzle

import (
	"math"
	"sort"
)

// MinLevel and MaxLevel bound the first-letter difficulty.
const (
	MinLevel = 1
	MaxLevel = 5
)

// hiddenShare is the fraction of words hidden at each level.
var hiddenShare = [...]float64{0, 0.25, 0.5, 0.75, 1}

// HiddenCount returns how many of total words are hidden at level.
func HiddenCount(total, level int) int {
	if total <= 0 {
		return 0
	}
	level = min(max(level, MinLevel), MaxLevel)
	return int(math.Round(float64(total) * hiddenShare[level-1]))
}

// HiddenIndices returns the sorted word positions hidden at level, spread
// evenly over total words. The result only depends on total and level.
func HiddenIndices(total, level int) []int {
	count := HiddenCount(total, level)
	hidden := make([]int, 0, count)
	if count == 0 {
		return hidden
	}

	seen := make(map[int]bool, count)
	step := float64(total) / float64(count)
	for i := 0; i < count; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx >= total || seen[idx] {
			continue
		}
		seen[idx] = true
		hidden = append(hidden, idx)
	}

	// Rounding collisions leave gaps; fill from the lowest free index.
	for idx := 0; len(hidden) < count && idx < total; idx++ {
		if !seen[idx] {
			seen[idx] = true
			hidden = append(hidden, idx)
		}
	}

	sort.Ints(hidden)
	return hidden
}
