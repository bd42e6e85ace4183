package diff

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/listview/pkg/accessor"
	"github.com/matzehuels/listview/pkg/snapshot"
)

// Status is the classification of one node, payload, or edge.
type Status int

const (
	Unchanged Status = iota
	New
	Modified
)

func (s Status) String() string {
	switch s {
	case New:
		return "new"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// NodeDiff holds the classifications for one node.
type NodeDiff struct {
	Node Status
	Data Status
	Next Status
	Prev Status
}

// Result is the classification of a whole snapshot.
type Result struct {
	Nodes   map[accessor.Node]NodeDiff
	Head    Status
	Tail    Status
	Removed int
}

// Node returns the classification recorded for raw. Unknown handles are
// reported as unchanged.
func (r *Result) Node(raw accessor.Node) NodeDiff {
	if r == nil || raw == nil {
		return NodeDiff{}
	}
	return r.Nodes[raw]
}

// Summary counts the classifications in a [Result].
type Summary struct {
	NewNodes      int
	ModifiedData  int
	ModifiedEdges int
	ModifiedRefs  int
	Removed       int
}

// Changed reports whether anything differs from the previous render.
func (s Summary) Changed() bool {
	return s != Summary{}
}

// Summary returns the counts for r.
func (r *Result) Summary() Summary {
	s := Summary{Removed: r.Removed}
	for _, d := range r.Nodes {
		if d.Node == New {
			s.NewNodes++
			continue
		}
		if d.Data == Modified {
			s.ModifiedData++
		}
		if d.Next == Modified {
			s.ModifiedEdges++
		}
		if d.Prev == Modified {
			s.ModifiedEdges++
		}
	}
	for _, ref := range []Status{r.Head, r.Tail} {
		if ref == Modified {
			s.ModifiedRefs++
		}
	}
	return s
}

// Compute classifies cur against prev. A nil prev is treated as empty.
// Neither snapshot is modified.
func Compute(cur, prev *snapshot.Snapshot) *Result {
	if prev == nil {
		prev = snapshot.Empty()
	}
	r := &Result{
		Nodes: make(map[accessor.Node]NodeDiff, cur.Len()),
		Head:  refStatus(cur.Head, prev.Head),
		Tail:  refStatus(cur.Tail, prev.Tail),
	}

	for raw, n := range cur.Nodes {
		old, ok := prev.Lookup(raw)
		if !ok {
			r.Nodes[raw] = NodeDiff{Node: New, Data: New, Next: New, Prev: New}
			continue
		}
		r.Nodes[raw] = NodeDiff{
			Data: dataStatus(n, old),
			Next: refStatus(n.Next, old.Next),
			Prev: refStatus(n.Prev, old.Prev),
		}
	}

	for raw := range prev.Nodes {
		if _, ok := cur.Lookup(raw); !ok {
			r.Removed++
		}
	}
	return r
}

func refStatus(cur, prev accessor.Node) Status {
	if cur != prev {
		return Modified
	}
	return Unchanged
}

// dataStatus compares payloads by presence, then by captured label and
// value. The label catches in-place mutation of a shared payload.
func dataStatus(cur, prev *snapshot.GraphNode) Status {
	switch {
	case cur.HasData() != prev.HasData():
		return Modified
	case !cur.HasData():
		return Unchanged
	case cur.Label != prev.Label, !cmp.Equal(cur.Data, prev.Data, payloadOptions...):
		return Modified
	}
	return Unchanged
}

// payloadOptions make value comparison reflexive for NaN and let it look at
// unexported fields of caller payloads.
var payloadOptions = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}
