package puzzle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHiddenIndices(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		level  int
		expect []int
	}{
		{"eight words half hidden", 8, 3, []int{0, 2, 4, 6}},
		{"five words quarter hidden", 5, 2, []int{0}},
		{"five words three quarters", 5, 4, []int{0, 1, 3, 4}},
		{"three words half", 3, 3, []int{0, 2}},
		{"seven words three quarters", 7, 4, []int{0, 1, 3, 4, 6}},
		{"level above range clamps to all", 3, 9, []int{0, 1, 2}},
		{"level below range clamps to none", 3, -1, []int{}},
		{"no words", 0, 5, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HiddenIndices(tc.total, tc.level)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("HiddenIndices(%d, %d) mismatch (-want +got):\n%s", tc.total, tc.level, diff)
			}
		})
	}
}

func TestHiddenIndicesExtremes(t *testing.T) {
	for n := 1; n <= 40; n++ {
		if got := HiddenIndices(n, 1); len(got) != 0 {
			t.Errorf("level 1 with %d words should hide nothing, got %v", n, got)
		}

		all := HiddenIndices(n, 5)
		if len(all) != n {
			t.Fatalf("level 5 with %d words should hide all, got %v", n, all)
		}
		for i, idx := range all {
			if idx != i {
				t.Fatalf("level 5 with %d words: index %d = %d", n, i, idx)
			}
		}
	}
}

func TestHiddenIndicesCountsSortedDeterministic(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for level := MinLevel; level <= MaxLevel; level++ {
			a := HiddenIndices(n, level)
			b := HiddenIndices(n, level)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Fatalf("HiddenIndices(%d, %d) not deterministic:\n%s", n, level, diff)
			}
			if len(a) != HiddenCount(n, level) {
				t.Fatalf("HiddenIndices(%d, %d) returned %d indices, want %d", n, level, len(a), HiddenCount(n, level))
			}
			for i := 1; i < len(a); i++ {
				if a[i-1] >= a[i] {
					t.Fatalf("HiddenIndices(%d, %d) not strictly ascending: %v", n, level, a)
				}
			}
			if len(a) > 0 && a[len(a)-1] >= n {
				t.Fatalf("HiddenIndices(%d, %d) out of range: %v", n, level, a)
			}
		}
	}
}
