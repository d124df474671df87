package puzzle

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		total, penalties, expected int
	}{
		{12, 0, 100},
		{12, 3, 75},
		{3, 1, 67},   // 66.67 rounds up
		{8, 1, 88},   // 87.5 rounds up
		{4, 9, 0},    // clamped
		{5, -2, 100}, // negative penalties ignored
		{0, 0, 100},  // nothing to score
	}

	for _, tc := range tests {
		if got := Score(tc.total, tc.penalties); got != tc.expected {
			t.Errorf("Score(%d, %d) = %d, expected %d", tc.total, tc.penalties, got, tc.expected)
		}
	}
}
