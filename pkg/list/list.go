package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/matzehuels/listview/pkg/accessor"
)

var (
	// ErrIndexOutOfRange is returned when a position is outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned when a [start, stop) range is malformed.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("list is empty")
)

// Interface is the method set shared by [List] and [Ring].
type Interface[E comparable] interface {
	Add(item E)
	AddFirst(item E)
	AddLast(item E)
	Insert(pos int, item E) error
	Set(pos int, item E) (E, error)
	Get(pos int) (E, error)
	RemoveAt(pos int) (E, error)
	Remove(item E) bool
	RemoveFirst() (E, error)
	RemoveLast() (E, error)
	RemoveRange(start, stop int) error
	MakeEmpty()

	Size() int
	IndexOf(item E) int
	IndexOfFrom(item E, pos int) int
	SubList(start, stop int) (Interface[E], error)
	All() iter.Seq[E]
	String() string

	Accessor() accessor.Accessor
}

type node[E any] struct {
	prev *node[E]
	data E
	next *node[E]
}

// List is a linear doubly-linked list. The zero value is an empty list.
type List[E comparable] struct {
	first *node[E]
	last  *node[E]
	size  int
}

// New returns a list holding items in order.
func New[E comparable](items ...E) *List[E] {
	l := &List[E]{}
	for _, it := range items {
		l.Add(it)
	}
	return l
}

// Add appends item.
func (l *List[E]) Add(item E) { l.AddLast(item) }

// AddFirst inserts item before the first element.
func (l *List[E]) AddFirst(item E) {
	n := &node[E]{data: item, next: l.first}
	if l.first == nil {
		l.last = n
	} else {
		l.first.prev = n
	}
	l.first = n
	l.size++
}

// AddLast appends item.
func (l *List[E]) AddLast(item E) {
	n := &node[E]{data: item, prev: l.last}
	if l.last == nil {
		l.first = n
	} else {
		l.last.next = n
	}
	l.last = n
	l.size++
}

// Insert places item at pos, shifting later elements. pos may equal Size.
func (l *List[E]) Insert(pos int, item E) error {
	if pos < 0 || pos > l.size {
		return outOfRange(pos, l.size)
	}
	switch pos {
	case 0:
		l.AddFirst(item)
	case l.size:
		l.AddLast(item)
	default:
		at := l.nodeAt(pos)
		n := &node[E]{prev: at.prev, data: item, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}
	return nil
}

// Set replaces the element at pos and returns the old value.
func (l *List[E]) Set(pos int, item E) (E, error) {
	var zero E
	if pos < 0 || pos >= l.size {
		return zero, outOfRange(pos, l.size)
	}
	n := l.nodeAt(pos)
	old := n.data
	n.data = item
	return old, nil
}

// Get returns the element at pos.
func (l *List[E]) Get(pos int) (E, error) {
	var zero E
	if pos < 0 || pos >= l.size {
		return zero, outOfRange(pos, l.size)
	}
	return l.nodeAt(pos).data, nil
}

// RemoveAt removes and returns the element at pos.
func (l *List[E]) RemoveAt(pos int) (E, error) {
	var zero E
	if pos < 0 || pos >= l.size {
		return zero, outOfRange(pos, l.size)
	}
	n := l.nodeAt(pos)
	l.unlink(n)
	return n.data, nil
}

// Remove removes the first occurrence of item and reports whether one existed.
func (l *List[E]) Remove(item E) bool {
	for n := l.first; n != nil; n = n.next {
		if n.data == item {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveFirst removes and returns the first element.
func (l *List[E]) RemoveFirst() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}
	n := l.first
	l.unlink(n)
	return n.data, nil
}

// RemoveLast removes and returns the last element.
func (l *List[E]) RemoveLast() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, ErrEmpty
	}
	n := l.last
	l.unlink(n)
	return n.data, nil
}

// RemoveRange removes the elements in [start, stop).
func (l *List[E]) RemoveRange(start, stop int) error {
	if err := checkRange(start, stop, l.size); err != nil {
		return err
	}
	if start == stop {
		return nil
	}
	from := l.nodeAt(start)
	to := from
	for i := start; i < stop-1; i++ {
		to = to.next
	}

	if from.prev == nil {
		l.first = to.next
	} else {
		from.prev.next = to.next
	}
	if to.next == nil {
		l.last = from.prev
	} else {
		to.next.prev = from.prev
	}
	from.prev, to.next = nil, nil
	l.size -= stop - start
	return nil
}

// MakeEmpty removes every element.
func (l *List[E]) MakeEmpty() {
	l.first, l.last, l.size = nil, nil, 0
}

// Size returns the number of elements.
func (l *List[E]) Size() int { return l.size }

// IndexOf returns the position of the first occurrence of item, or -1.
func (l *List[E]) IndexOf(item E) int { return l.IndexOfFrom(item, 0) }

// IndexOfFrom returns the position of the first occurrence of item at or
// after pos, or -1.
func (l *List[E]) IndexOfFrom(item E, pos int) int {
	if pos < 0 || pos >= l.size {
		return -1
	}
	i := pos
	for n := l.nodeAt(pos); n != nil; n = n.next {
		if n.data == item {
			return i
		}
		i++
	}
	return -1
}

// SubList returns a new list with copies of the elements in [start, stop).
func (l *List[E]) SubList(start, stop int) (Interface[E], error) {
	if err := checkRange(start, stop, l.size); err != nil {
		return nil, err
	}
	out := &List[E]{}
	if start == stop {
		return out, nil
	}
	n := l.nodeAt(start)
	for i := start; i < stop; i++ {
		out.AddLast(n.data)
		n = n.next
	}
	return out, nil
}

// All iterates over the elements in order.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String formats the list as "[a, b, c]".
func (l *List[E]) String() string { return format(l.All()) }

// Accessor exposes the list's fields to the diagram engine.
func (l *List[E]) Accessor() accessor.Accessor {
	return &accessor.Funcs{
		HeadFunc:  func() (accessor.Node, error) { return l.first, nil },
		TailFunc:  func() (accessor.Node, error) { return l.last, nil },
		PrevFunc:  nodeFunc(func(n *node[E]) accessor.Node { return n.prev }),
		DataFunc:  nodeFunc(func(n *node[E]) any { return n.data }),
		NextFunc:  nodeFunc(func(n *node[E]) accessor.Node { return n.next }),
		HeadLabel: "first",
		TailLabel: "last",
	}
}

func (l *List[E]) nodeAt(pos int) *node[E] {
	if pos < l.size/2 {
		n := l.first
		for range pos {
			n = n.next
		}
		return n
	}
	n := l.last
	for i := l.size - 1; i > pos; i-- {
		n = n.prev
	}
	return n
}

func (l *List[E]) unlink(n *node[E]) {
	if n.prev == nil {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[E comparable](a, b Interface[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	return true
}

// nodeFunc adapts a typed field read to the accessor's untyped signature.
func nodeFunc[E any, R any](read func(*node[E]) R) func(accessor.Node) (R, error) {
	return func(n accessor.Node) (R, error) {
		var zero R
		nd, ok := n.(*node[E])
		if !ok || nd == nil {
			return zero, fmt.Errorf("unexpected node %T", n)
		}
		return read(nd), nil
	}
}

func outOfRange(pos, size int) error {
	return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, size)
}

func checkRange(start, stop, size int) error {
	if start < 0 || stop > size || start > stop {
		return fmt.Errorf("%w: [%d, %d) with size %d", ErrInvalidRange, start, stop, size)
	}
	return nil
}

func format[E any](seq iter.Seq[E]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

var (
	_ Interface[string] = (*List[string])(nil)
	_ Interface[string] = (*Ring[string])(nil)
)
