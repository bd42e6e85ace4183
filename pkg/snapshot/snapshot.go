package snapshot

import "github.com/matzehuels/listview/pkg/accessor"

// Snapshot is the node set and reference identities of one completed render.
// It is read-only once produced.
type Snapshot struct {
	Nodes map[accessor.Node]*GraphNode
	Head  accessor.Node
	Tail  accessor.Node
}

// Empty returns the snapshot an engine starts with: no nodes, no references.
func Empty() *Snapshot {
	return &Snapshot{Nodes: map[accessor.Node]*GraphNode{}}
}

// Lookup returns the node recorded for raw.
func (s *Snapshot) Lookup(raw accessor.Node) (*GraphNode, bool) {
	if s == nil || raw == nil {
		return nil, false
	}
	n, ok := s.Nodes[raw]
	return n, ok
}

// Len returns the number of recorded nodes.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Nodes)
}
