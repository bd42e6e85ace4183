package snapshot

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/listview/pkg/accessor"
	lverrors "github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/list"
)

func TestTakeLinearList(t *testing.T) {
	l := list.New("A", "B", "C")
	b, err := Take(l.Accessor(), Options{NewID: seqIDs()})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Levels.Len() != 3 {
		t.Errorf("Levels.Len() = %d, want 3", b.Levels.Len())
	}
	for i, want := range []string{"A", "B", "C"} {
		lvl := b.Levels.Level(i)
		if len(lvl) != 1 || lvl[0].Label != want {
			t.Errorf("Level(%d) = %v, want [%s]", i, labels(lvl), want)
		}
		if lvl[0].Rank != i {
			t.Errorf("rank of %s = %d, want %d", want, lvl[0].Rank, i)
		}
	}
	if b.Head == nil || b.Head.Label != "A" {
		t.Errorf("Head = %+v, want A", b.Head)
	}
	if b.Tail == nil || b.Tail.Label != "C" {
		t.Errorf("Tail = %+v, want C", b.Tail)
	}
	if b.HeadName != "first" || b.TailName != "last" {
		t.Errorf("names = %q/%q", b.HeadName, b.TailName)
	}
	if got := []string{b.Levels.Level(0)[0].ID, b.Levels.Level(1)[0].ID}; !slices.Equal(got, []string{"n1", "n2"}) {
		t.Errorf("IDs = %v, want discovery order n1, n2", got)
	}
}

func TestTakeEmpty(t *testing.T) {
	b, err := Take(list.New[string]().Accessor(), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	if b.Len() != 0 || !b.Levels.Empty() {
		t.Errorf("empty list produced %d nodes, %d levels", b.Len(), b.Levels.Len())
	}
	if b.Head != nil || b.Tail != nil || b.HeadRaw != nil || b.TailRaw != nil {
		t.Error("empty list should have absent references")
	}
	if !b.HasTail {
		t.Error("linear list should report a trailer")
	}
}

func TestTakeRingIsCycleSafe(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{"single", []string{"A"}},
		{"pair", []string{"A", "B"}},
		{"five", []string{"A", "B", "C", "D", "E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := list.NewRing(tt.items...)
			b, err := Take(r.Accessor(), Options{})
			if err != nil {
				t.Fatalf("Take() error: %v", err)
			}
			if b.Len() != len(tt.items) {
				t.Errorf("Len() = %d, want %d", b.Len(), len(tt.items))
			}
			if b.Levels.NodeCount() != len(tt.items) {
				t.Errorf("NodeCount() = %d, want %d", b.Levels.NodeCount(), len(tt.items))
			}
			if b.HasTail || b.Tail != nil {
				t.Error("ring should have no trailer")
			}
			// Next is explored first, so the whole ring is laid out forward.
			if got := labels(b.Levels.Nodes()); !slices.Equal(got, tt.items) {
				t.Errorf("level order = %v, want %v", got, tt.items)
			}
		})
	}
}

func TestTakeNegativeRanks(t *testing.T) {
	a, bb, c := &cell{data: "A"}, &cell{data: "B"}, &cell{data: "C"}
	link(a, bb, c)

	b, err := Take(cellAccessor(bb, c, true), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	if b.Levels.Min() != -1 || b.Levels.Max() != 1 {
		t.Errorf("bounds = [%d, %d], want [-1, 1]", b.Levels.Min(), b.Levels.Max())
	}
	if got := labels(b.Levels.Nodes()); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("level order = %v, want [A B C]", got)
	}
	if b.Lookup(a).Rank != -1 {
		t.Errorf("rank of A = %d, want -1", b.Lookup(a).Rank)
	}
}

func TestTakeDetachedTail(t *testing.T) {
	a, bb := &cell{data: "A"}, &cell{data: "B"}
	link(a, bb)
	orphan := &cell{data: "Z"}

	b, err := Take(cellAccessor(a, orphan, true), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if got := b.Lookup(orphan).Rank; got != 1 {
		t.Errorf("detached trailer rank = %d, want max rank 1", got)
	}
	if got := labels(b.Levels.Level(1)); !slices.Equal(got, []string{"B", "Z"}) {
		t.Errorf("Level(1) = %v, want [B Z]", got)
	}
}

func TestTakeTailOnly(t *testing.T) {
	z := &cell{data: "Z"}
	b, err := Take(cellAccessor(nil, z, true), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	if b.Head != nil {
		t.Error("Head should be absent")
	}
	if b.Tail == nil || b.Tail.Rank != 0 {
		t.Errorf("Tail = %+v, want rank 0", b.Tail)
	}
}

func TestTakeNullNode(t *testing.T) {
	null := &cell{}
	b, err := Take(cellAccessor(null, null, true), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	n := b.Lookup(null)
	if n == nil || !n.IsNull() {
		t.Fatalf("Lookup(null) = %+v, want null node", n)
	}
	if n.HasData() || n.Label != "null" {
		t.Errorf("null node data = %v, label %q", n.Data, n.Label)
	}
	if b.Head != b.Tail {
		t.Error("header and trailer reference the same node")
	}
}

func TestTakeCapturesDataAtDiscovery(t *testing.T) {
	a := &cell{data: "before"}
	b, err := Take(cellAccessor(a, a, true), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	a.data = "after"
	if got := b.Lookup(a).Label; got != "before" {
		t.Errorf("Label = %q, want before", got)
	}
}

func TestTakeAccessorFailure(t *testing.T) {
	a, bb := &cell{data: "A"}, &cell{data: "B"}
	link(a, bb)
	boom := errors.New("boom")

	acc := cellAccessor(a, bb, true)
	acc.DataFunc = func(n accessor.Node) (any, error) {
		if n == bb {
			return nil, boom
		}
		return n.(*cell).data, nil
	}

	b, err := Take(acc, Options{})
	if err == nil {
		t.Fatal("Take() should fail")
	}
	if b != nil {
		t.Error("Take() should not return a partial build")
	}
	if !lverrors.Is(err, lverrors.ErrCodeAccessor) {
		t.Errorf("error code = %q, want ACCESSOR_FAILURE", lverrors.GetCode(err))
	}
	if !errors.Is(err, boom) {
		t.Error("error should wrap the accessor's cause")
	}
}

type boxedHandle struct{ key any }

func TestTakeRejectsUncomparableHandles(t *testing.T) {
	tests := []struct {
		name       string
		head, next accessor.Node
	}{
		{"slice head", []int{1}, nil},
		{"struct holding a slice", boxedHandle{[]int{1}}, nil},
		{"struct holding a map as next", boxedHandle{1}, boxedHandle{map[string]int{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &accessor.Funcs{
				HeadFunc: func() (accessor.Node, error) { return tt.head, nil },
				PrevFunc: func(accessor.Node) (accessor.Node, error) { return nil, nil },
				DataFunc: func(accessor.Node) (any, error) { return nil, nil },
				NextFunc: func(accessor.Node) (accessor.Node, error) { return tt.next, nil },
			}
			_, err := Take(acc, Options{})
			if !lverrors.Is(err, lverrors.ErrCodeAccessor) {
				t.Errorf("error = %v, want ACCESSOR_FAILURE", err)
			}
		})
	}
}

func TestBuildSnapshot(t *testing.T) {
	l := list.New(1, 2)
	b, err := Take(l.Accessor(), Options{})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	s := b.Snapshot()
	if s.Len() != 2 || s.Head != b.HeadRaw || s.Tail != b.TailRaw {
		t.Errorf("Snapshot() = %+v", s)
	}
	if _, ok := s.Lookup(b.HeadRaw); !ok {
		t.Error("Lookup(head) should succeed")
	}
	if !b.IsHeader(b.HeadRaw) || b.IsHeader(b.TailRaw) || b.IsHeader(nil) {
		t.Error("IsHeader() mismatch")
	}
}

func TestEmptySnapshot(t *testing.T) {
	s := Empty()
	if s.Len() != 0 || s.Head != nil || s.Tail != nil {
		t.Errorf("Empty() = %+v", s)
	}
	var nilSnap *Snapshot
	if nilSnap.Len() != 0 {
		t.Error("nil snapshot Len() should be 0")
	}
	if _, ok := nilSnap.Lookup(&cell{}); ok {
		t.Error("nil snapshot Lookup() should fail")
	}
}

func TestNewIDIsDOTSafe(t *testing.T) {
	id := NewID()
	if len(id) != 32 {
		t.Errorf("NewID() = %q, want 32 hex characters", id)
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("NewID() = %q contains %q", id, r)
		}
	}
	if NewID() == id {
		t.Error("NewID() should not repeat")
	}
}
