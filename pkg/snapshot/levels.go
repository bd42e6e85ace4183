package snapshot

// LevelTable groups nodes by rank. Levels are dense and indexed from the
// minimum observed rank, so Level(0) holds the nodes of rank Min().
type LevelTable struct {
	levels   [][]*GraphNode
	min, max int
}

// NewLevelTable returns an empty table.
func NewLevelTable() *LevelTable {
	return &LevelTable{}
}

// Insert places n at rank, growing the table at either end when rank is
// outside the current bounds. Gaps created by a distant rank are filled with
// empty levels so indices stay dense.
func (t *LevelTable) Insert(n *GraphNode, rank int) {
	n.Rank = rank
	switch {
	case len(t.levels) == 0:
		t.levels = [][]*GraphNode{{n}}
		t.min, t.max = rank, rank
	case rank < t.min:
		grown := make([][]*GraphNode, t.min-rank, t.min-rank+len(t.levels))
		grown[0] = []*GraphNode{n}
		t.levels = append(grown, t.levels...)
		t.min = rank
	case rank > t.max:
		for t.max < rank-1 {
			t.levels = append(t.levels, nil)
			t.max++
		}
		t.levels = append(t.levels, []*GraphNode{n})
		t.max = rank
	default:
		i := rank - t.min
		t.levels[i] = append(t.levels[i], n)
	}
}

// Len returns the number of levels.
func (t *LevelTable) Len() int { return len(t.levels) }

// Empty reports whether no node has been inserted.
func (t *LevelTable) Empty() bool { return len(t.levels) == 0 }

// Min returns the smallest rank. It is 0 for an empty table.
func (t *LevelTable) Min() int { return t.min }

// Max returns the largest rank. It is 0 for an empty table.
func (t *LevelTable) Max() int { return t.max }

// Level returns the nodes at index i, where index 0 is rank Min().
func (t *LevelTable) Level(i int) []*GraphNode {
	if i < 0 || i >= len(t.levels) {
		return nil
	}
	return t.levels[i]
}

// Nodes returns every node in ascending rank order, preserving insertion
// order within a level.
func (t *LevelTable) Nodes() []*GraphNode {
	var out []*GraphNode
	for _, lvl := range t.levels {
		out = append(out, lvl...)
	}
	return out
}

// NodeCount returns the total number of nodes across all levels.
func (t *LevelTable) NodeCount() int {
	n := 0
	for _, lvl := range t.levels {
		n += len(lvl)
	}
	return n
}
