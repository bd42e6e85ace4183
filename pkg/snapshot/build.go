package snapshot

import (
	"reflect"

	"github.com/matzehuels/listview/pkg/accessor"
	"github.com/matzehuels/listview/pkg/errors"
)

// Options configures [Take].
type Options struct {
	// NewID generates GraphNode identifiers. Defaults to [NewID].
	NewID func() string
}

// Build is the result of one walk over the structure.
type Build struct {
	Head *GraphNode // node the header references, nil if absent
	Tail *GraphNode // node the trailer references, nil if absent or no trailer

	HeadRaw accessor.Node
	TailRaw accessor.Node
	HasTail bool

	HeadName string
	TailName string

	Levels *LevelTable
	Nodes  map[accessor.Node]*GraphNode
}

// Lookup returns the GraphNode built for raw, or nil.
func (b *Build) Lookup(raw accessor.Node) *GraphNode {
	if raw == nil {
		return nil
	}
	return b.Nodes[raw]
}

// Len returns the number of distinct nodes discovered.
func (b *Build) Len() int { return len(b.Nodes) }

// IsHeader reports whether raw is the node the header references.
func (b *Build) IsHeader(raw accessor.Node) bool {
	return raw != nil && raw == b.HeadRaw
}

// Snapshot returns the part of the build kept for the next diff.
func (b *Build) Snapshot() *Snapshot {
	return &Snapshot{Nodes: b.Nodes, Head: b.HeadRaw, Tail: b.TailRaw}
}

type walker struct {
	acc   accessor.Accessor
	newID func() string
	nodes map[accessor.Node]*GraphNode
	table *LevelTable
}

type visit struct {
	raw  accessor.Node
	rank int
}

// Take walks the structure behind acc and returns its nodes by level.
// An accessor failure aborts the walk; nothing partial is returned.
func Take(acc accessor.Accessor, opts Options) (*Build, error) {
	if opts.NewID == nil {
		opts.NewID = NewID
	}
	w := &walker{
		acc:   acc,
		newID: opts.NewID,
		nodes: make(map[accessor.Node]*GraphNode),
		table: NewLevelTable(),
	}

	b := &Build{
		HasTail:  acc.HasTail(),
		HeadName: acc.HeadName(),
		TailName: acc.TailName(),
		Levels:   w.table,
		Nodes:    w.nodes,
	}

	headRaw, err := acc.Head()
	if err != nil {
		return nil, accessorError(err, "read %s", b.HeadName)
	}
	headRaw = normalize(headRaw)
	b.HeadRaw = headRaw
	if b.Head, err = w.walk(headRaw, 0); err != nil {
		return nil, err
	}

	if b.HasTail {
		tailRaw, err := acc.Tail()
		if err != nil {
			return nil, accessorError(err, "read %s", b.TailName)
		}
		tailRaw = normalize(tailRaw)
		b.TailRaw = tailRaw
		// In a well-formed list the trailer sits on the deepest level.
		rank := 0
		if !w.table.Empty() {
			rank = w.table.Max()
		}
		if b.Tail, err = w.walk(tailRaw, rank); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// walk discovers start and everything reachable from it. Next neighbors are
// explored before prev neighbors, matching a recursive pre-order walk.
func (w *walker) walk(start accessor.Node, rank int) (*GraphNode, error) {
	if start == nil {
		return nil, nil
	}
	if n, ok, err := w.lookup(start); err != nil || ok {
		return n, err
	}

	stack := []visit{{start, rank}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.raw == nil {
			continue
		}
		_, ok, err := w.lookup(v.raw)
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}

		n, err := w.discover(v.raw, v.rank)
		if err != nil {
			return nil, err
		}
		stack = append(stack, visit{n.Prev, v.rank - 1}, visit{n.Next, v.rank + 1})
	}
	return w.nodes[start], nil
}

// lookup reads the identity map. Handles that cannot key it fail with
// ACCESSOR_FAILURE: uncomparable types, and comparable types whose dynamic
// contents are not hashable, like a struct holding a slice in an any field.
func (w *walker) lookup(raw accessor.Node) (n *GraphNode, ok bool, err error) {
	if t := reflect.TypeOf(raw); !t.Comparable() {
		return nil, false, errors.New(errors.ErrCodeAccessor, "node handle of type %s is not comparable", t)
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeAccessor, "node handle of type %T is not hashable: %v", raw, r)
		}
	}()
	n, ok = w.nodes[raw]
	return n, ok, nil
}

func (w *walker) discover(raw accessor.Node, rank int) (*GraphNode, error) {
	prev, err := w.acc.Prev(raw)
	if err != nil {
		return nil, accessorError(err, "read prev")
	}
	data, err := w.acc.Data(raw)
	if err != nil {
		return nil, accessorError(err, "read data")
	}
	next, err := w.acc.Next(raw)
	if err != nil {
		return nil, accessorError(err, "read next")
	}
	prev, data, next = normalize(prev), normalize(data), normalize(next)

	n := &GraphNode{
		ID:    w.newID(),
		Base:  raw,
		Prev:  prev,
		Data:  data,
		Label: dataLabel(data),
		Next:  next,
	}
	w.nodes[raw] = n
	w.table.Insert(n, rank)
	return n, nil
}

// accessorError gives err the ACCESSOR_FAILURE code unless it already
// carries one.
func accessorError(err error, format string, args ...any) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeAccessor, err, format, args...)
}

func normalize(v any) any {
	if accessor.IsAbsent(v) {
		return nil
	}
	return v
}
