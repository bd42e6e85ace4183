package snapshot

import (
	"slices"
	"testing"
)

func TestLevelTableInsert(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []int
		min, max int
		sizes    []int
	}{
		{"single", []int{0}, 0, 0, []int{1}},
		{"ascending", []int{0, 1, 2}, 0, 2, []int{1, 1, 1}},
		{"shared level", []int{0, 0, 1}, 0, 1, []int{2, 1}},
		{"grows down", []int{0, -1, -2}, -2, 0, []int{1, 1, 1}},
		{"gap above", []int{0, 3}, 0, 3, []int{1, 0, 0, 1}},
		{"gap below", []int{0, -3}, -3, 0, []int{1, 0, 0, 1}},
		{"both ends", []int{0, 1, -1, 2, -1}, -1, 2, []int{2, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := NewLevelTable()
			for i, r := range tt.ranks {
				n := &GraphNode{Label: string(rune('a' + i))}
				lt.Insert(n, r)
				if n.Rank != r {
					t.Errorf("node %d rank = %d, want %d", i, n.Rank, r)
				}
			}
			if lt.Min() != tt.min || lt.Max() != tt.max {
				t.Errorf("bounds = [%d, %d], want [%d, %d]", lt.Min(), lt.Max(), tt.min, tt.max)
			}
			var sizes []int
			for i := range lt.Len() {
				sizes = append(sizes, len(lt.Level(i)))
			}
			if !slices.Equal(sizes, tt.sizes) {
				t.Errorf("level sizes = %v, want %v", sizes, tt.sizes)
			}
			if lt.NodeCount() != len(tt.ranks) {
				t.Errorf("NodeCount() = %d, want %d", lt.NodeCount(), len(tt.ranks))
			}
			for i := range lt.Len() {
				for _, n := range lt.Level(i) {
					if n.Rank != lt.Min()+i {
						t.Errorf("node %s at index %d has rank %d", n.Label, i, n.Rank)
					}
				}
			}
		})
	}
}

func TestLevelTableOrderWithinLevel(t *testing.T) {
	lt := NewLevelTable()
	for _, l := range []string{"x", "y", "z"} {
		lt.Insert(&GraphNode{Label: l}, 5)
	}
	if got := labels(lt.Level(0)); !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Errorf("Level(0) = %v, want insertion order", got)
	}
	if lt.Level(-1) != nil || lt.Level(1) != nil {
		t.Error("out-of-range Level() should be nil")
	}
}

func TestLevelTableEmpty(t *testing.T) {
	lt := NewLevelTable()
	if !lt.Empty() || lt.Len() != 0 || lt.Min() != 0 || lt.Max() != 0 || lt.Nodes() != nil {
		t.Error("new table should be empty with zero bounds")
	}
}
