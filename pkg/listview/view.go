package listview

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/listview/pkg/accessor"
	"github.com/matzehuels/listview/pkg/engine"
	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/list"
	"github.com/matzehuels/listview/pkg/observability"
	"github.com/matzehuels/listview/pkg/transcript"
)

// ConstructorName is the entry recorded when a View is created.
const ConstructorName = "LinkedList()"

// Transcript receives operation headings and diagrams. [transcript.Document]
// and [transcript.Recorder] implement it.
type Transcript interface {
	engine.Sink
	Operation(op transcript.Operation) error
}

// Options configures a [View].
type Options struct {
	Engine engine.Options

	// Discover locates the list's fields by name instead of calling its
	// Accessor method.
	Discover bool

	// SkipReads leaves read-only operations out of the transcript.
	SkipReads bool

	// Logger receives discovery and operation logs. Defaults to
	// log.Default(); it is also used by the engine unless Engine.Logger is
	// set.
	Logger *log.Logger
}

// View is a list whose operations are recorded in a transcript.
type View[E comparable] struct {
	list   list.Interface[E]
	eng    *engine.Engine
	t      Transcript
	opts   Options
	log    *log.Logger
	caller *transcript.Caller
	err    error

	// pending is the heading written by headedSink ahead of the next diagram.
	pending *transcript.Operation
}

// New wraps l and records the constructor entry with an initial diagram.
func New[E comparable](l list.Interface[E], t Transcript, opts Options) (*View[E], error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Engine.Logger == nil {
		opts.Engine.Logger = opts.Logger
	}

	var acc accessor.Accessor
	if opts.Discover {
		r, err := accessor.Discover(l)
		if err != nil {
			return nil, err
		}
		logFields(opts.Logger, r)
		acc = r
	} else {
		acc = l.Accessor()
	}

	if accessor.IsAbsent(t) {
		return nil, errors.New(errors.ErrCodeConfiguration, "listview: transcript is required")
	}

	v := &View[E]{list: l, t: t, opts: opts, log: opts.Logger}
	eng, err := engine.New(acc, headedSink[E]{v}, opts.Engine)
	if err != nil {
		return nil, err
	}
	v.eng = eng
	if err := v.record(ConstructorName, true); err != nil {
		return nil, err
	}
	return v, nil
}

func logFields(logger *log.Logger, r *accessor.Reflect) {
	f := r.Fields()
	logger.Info("Header node name", "field", f.Head)
	if r.HasTail() {
		logger.Info("Tail node name", "field", f.Tail)
	} else {
		logger.Info("No tail node found; assuming list to be circular")
	}
	logger.Debug("Node fields", "type", f.NodeType, "prev", f.Prev, "data", f.Data, "next", f.Next)
}

// record writes the entry for one mutating operation, attributed to the code
// that called the View method.
func (v *View[E]) record(name string, diagram bool) error {
	return v.emit(transcript.CallerAt(2), name, diagram)
}

// read records a read-only operation. Failures are kept for [View.Err].
func (v *View[E]) read(name string) {
	if v.opts.SkipReads {
		v.caller = nil
		return
	}
	if err := v.emit(transcript.CallerAt(2), name, false); err != nil && v.err == nil {
		v.err = err
	}
}

func (v *View[E]) emit(c transcript.Caller, name string, diagram bool) error {
	if v.caller != nil {
		c = *v.caller
		v.caller = nil
	}
	op := transcript.Operation{Name: name, Caller: c, WithDiagram: diagram}
	if diagram {
		v.pending = &op
		_, err := v.eng.Render()
		v.pending = nil
		if err != nil {
			return err
		}
	} else if err := v.t.Operation(op); err != nil {
		return err
	}
	observability.Operation().OnOperation(context.Background(), name, diagram)
	v.log.Debug("Logged operation", "op", name, "from", c.String())
	return nil
}

// headedSink forwards diagrams to the view's transcript, writing the pending
// operation heading first. A render that fails before output leaves no
// heading behind.
type headedSink[E comparable] struct{ v *View[E] }

func (s headedSink[E]) WriteDiagram(d *engine.Diagram) error {
	if op := s.v.pending; op != nil {
		s.v.pending = nil
		if err := s.v.t.Operation(*op); err != nil {
			return err
		}
	}
	return s.v.t.WriteDiagram(d)
}

func (s headedSink[E]) Close() error {
	if c, ok := s.v.t.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// At sets the caller location reported for the next recorded operation,
// replacing the Go call site. Script runners use it to point at the script.
func (v *View[E]) At(c transcript.Caller) *View[E] {
	v.caller = &c
	return v
}

// Err returns the first error recorded while logging a read-only operation.
func (v *View[E]) Err() error { return v.err }

// Engine returns the view's diagram engine.
func (v *View[E]) Engine() *engine.Engine { return v.eng }

// Unwrap returns the underlying list. Operations on it are not recorded.
func (v *View[E]) Unwrap() list.Interface[E] { return v.list }

// Close releases the transcript.
func (v *View[E]) Close() error { return v.eng.Close() }

// =============================================================================
// Mutating operations
// =============================================================================

// Add appends item.
func (v *View[E]) Add(item E) error {
	v.list.Add(item)
	return v.record(fmt.Sprintf("add(%v)", item), true)
}

// AddFirst inserts item at the front.
func (v *View[E]) AddFirst(item E) error {
	v.list.AddFirst(item)
	return v.record(fmt.Sprintf("addFirst(%v)", item), true)
}

// AddLast appends item.
func (v *View[E]) AddLast(item E) error {
	v.list.AddLast(item)
	return v.record(fmt.Sprintf("addLast(%v)", item), true)
}

// Insert places item at pos.
func (v *View[E]) Insert(pos int, item E) error {
	if err := v.list.Insert(pos, item); err != nil {
		v.caller = nil
		return err
	}
	return v.record(fmt.Sprintf("insert(%d, %v)", pos, item), true)
}

// Set replaces the element at pos and returns the old value.
func (v *View[E]) Set(pos int, item E) (E, error) {
	old, err := v.list.Set(pos, item)
	if err != nil {
		v.caller = nil
		return old, err
	}
	return old, v.record(fmt.Sprintf("set(%d, %v)", pos, item), true)
}

// RemoveAt removes and returns the element at pos.
func (v *View[E]) RemoveAt(pos int) (E, error) {
	old, err := v.list.RemoveAt(pos)
	if err != nil {
		v.caller = nil
		return old, err
	}
	return old, v.record(fmt.Sprintf("remove(%d)", pos), true)
}

// Remove removes the first occurrence of item. The operation is recorded
// whether or not item was present.
func (v *View[E]) Remove(item E) (bool, error) {
	ok := v.list.Remove(item)
	return ok, v.record(fmt.Sprintf("remove(%v)", item), true)
}

// RemoveFirst removes and returns the first element.
func (v *View[E]) RemoveFirst() (E, error) {
	old, err := v.list.RemoveFirst()
	if err != nil {
		v.caller = nil
		return old, err
	}
	return old, v.record("removeFirst()", true)
}

// RemoveLast removes and returns the last element.
func (v *View[E]) RemoveLast() (E, error) {
	old, err := v.list.RemoveLast()
	if err != nil {
		v.caller = nil
		return old, err
	}
	return old, v.record("removeLast()", true)
}

// RemoveRange removes the elements in [start, stop).
func (v *View[E]) RemoveRange(start, stop int) error {
	if err := v.list.RemoveRange(start, stop); err != nil {
		v.caller = nil
		return err
	}
	return v.record(fmt.Sprintf("removeRange(%d, %d)", start, stop), true)
}

// MakeEmpty removes every element.
func (v *View[E]) MakeEmpty() error {
	v.list.MakeEmpty()
	return v.record("makeEmpty()", true)
}

// =============================================================================
// Read-only operations
// =============================================================================

// Size returns the number of elements.
func (v *View[E]) Size() int {
	v.read("size()")
	return v.list.Size()
}

// Get returns the element at pos.
func (v *View[E]) Get(pos int) (E, error) {
	v.read(fmt.Sprintf("get(%d)", pos))
	return v.list.Get(pos)
}

// IndexOf returns the position of the first occurrence of item, or -1.
func (v *View[E]) IndexOf(item E) int {
	v.read(fmt.Sprintf("indexOf(%v)", item))
	return v.list.IndexOf(item)
}

// IndexOfFrom returns the position of item at or after pos, or -1.
func (v *View[E]) IndexOfFrom(item E, pos int) int {
	v.read(fmt.Sprintf("indexOf(%v, %d)", item, pos))
	return v.list.IndexOfFrom(item, pos)
}

// SubList returns a copy of the elements in [start, stop). The copy is not
// recorded.
func (v *View[E]) SubList(start, stop int) (list.Interface[E], error) {
	v.read(fmt.Sprintf("getSubList(%d, %d)", start, stop))
	return v.list.SubList(start, stop)
}

// Equal reports whether other holds the same elements in the same order.
func (v *View[E]) Equal(other list.Interface[E]) bool {
	v.read(fmt.Sprintf("equals(%s)", other.String()))
	return list.Equal(v.list, other)
}

// All iterates over the elements.
func (v *View[E]) All() iter.Seq[E] {
	v.read("iterator()")
	return v.list.All()
}

// String formats the list as "[a, b, c]".
func (v *View[E]) String() string {
	v.read("toString()")
	return v.list.String()
}
