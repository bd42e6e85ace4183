package list

import (
	"iter"

	"github.com/matzehuels/listview/pkg/accessor"
)

// Ring is a circular doubly-linked list with a single header reference.
// The zero value is an empty ring.
type Ring[E comparable] struct {
	head *node[E]
	size int
}

// NewRing returns a ring holding items in order.
func NewRing[E comparable](items ...E) *Ring[E] {
	r := &Ring[E]{}
	for _, it := range items {
		r.Add(it)
	}
	return r
}

// Add appends item before the header, making it the last element.
func (r *Ring[E]) Add(item E) { r.AddLast(item) }

// AddFirst inserts item and makes it the new header.
func (r *Ring[E]) AddFirst(item E) {
	r.AddLast(item)
	r.head = r.head.prev
}

// AddLast appends item.
func (r *Ring[E]) AddLast(item E) {
	n := &node[E]{data: item}
	if r.head == nil {
		n.prev, n.next = n, n
		r.head = n
	} else {
		r.linkBefore(n, r.head)
	}
	r.size++
}

// Insert places item at pos, shifting later elements. pos may equal Size.
func (r *Ring[E]) Insert(pos int, item E) error {
	if pos < 0 || pos > r.size {
		return outOfRange(pos, r.size)
	}
	switch pos {
	case 0:
		r.AddFirst(item)
	case r.size:
		r.AddLast(item)
	default:
		r.linkBefore(&node[E]{data: item}, r.nodeAt(pos))
		r.size++
	}
	return nil
}

// Set replaces the element at pos and returns the old value.
func (r *Ring[E]) Set(pos int, item E) (E, error) {
	var zero E
	if pos < 0 || pos >= r.size {
		return zero, outOfRange(pos, r.size)
	}
	n := r.nodeAt(pos)
	old := n.data
	n.data = item
	return old, nil
}

// Get returns the element at pos.
func (r *Ring[E]) Get(pos int) (E, error) {
	var zero E
	if pos < 0 || pos >= r.size {
		return zero, outOfRange(pos, r.size)
	}
	return r.nodeAt(pos).data, nil
}

// RemoveAt removes and returns the element at pos.
func (r *Ring[E]) RemoveAt(pos int) (E, error) {
	var zero E
	if pos < 0 || pos >= r.size {
		return zero, outOfRange(pos, r.size)
	}
	n := r.nodeAt(pos)
	r.unlink(n)
	return n.data, nil
}

// Remove removes the first occurrence of item and reports whether one existed.
func (r *Ring[E]) Remove(item E) bool {
	n := r.head
	for range r.size {
		if n.data == item {
			r.unlink(n)
			return true
		}
		n = n.next
	}
	return false
}

// RemoveFirst removes and returns the header element.
func (r *Ring[E]) RemoveFirst() (E, error) {
	var zero E
	if r.size == 0 {
		return zero, ErrEmpty
	}
	n := r.head
	r.unlink(n)
	return n.data, nil
}

// RemoveLast removes and returns the element before the header.
func (r *Ring[E]) RemoveLast() (E, error) {
	var zero E
	if r.size == 0 {
		return zero, ErrEmpty
	}
	n := r.head.prev
	r.unlink(n)
	return n.data, nil
}

// RemoveRange removes the elements in [start, stop).
func (r *Ring[E]) RemoveRange(start, stop int) error {
	if err := checkRange(start, stop, r.size); err != nil {
		return err
	}
	n := r.nodeAt(start)
	for range stop - start {
		next := n.next
		r.unlink(n)
		n = next
	}
	return nil
}

// MakeEmpty removes every element.
func (r *Ring[E]) MakeEmpty() {
	r.head, r.size = nil, 0
}

// Size returns the number of elements.
func (r *Ring[E]) Size() int { return r.size }

// IndexOf returns the position of the first occurrence of item, or -1.
func (r *Ring[E]) IndexOf(item E) int { return r.IndexOfFrom(item, 0) }

// IndexOfFrom returns the position of the first occurrence of item at or
// after pos, or -1. The search does not wrap past the last element.
func (r *Ring[E]) IndexOfFrom(item E, pos int) int {
	if pos < 0 || pos >= r.size {
		return -1
	}
	n := r.nodeAt(pos)
	for i := pos; i < r.size; i++ {
		if n.data == item {
			return i
		}
		n = n.next
	}
	return -1
}

// SubList returns a new ring with copies of the elements in [start, stop).
func (r *Ring[E]) SubList(start, stop int) (Interface[E], error) {
	if err := checkRange(start, stop, r.size); err != nil {
		return nil, err
	}
	out := &Ring[E]{}
	if start == stop {
		return out, nil
	}
	n := r.nodeAt(start)
	for range stop - start {
		out.AddLast(n.data)
		n = n.next
	}
	return out, nil
}

// All iterates over the elements once, starting at the header.
func (r *Ring[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		n := r.head
		for range r.size {
			if !yield(n.data) {
				return
			}
			n = n.next
		}
	}
}

// String formats the ring as "[a, b, c]".
func (r *Ring[E]) String() string { return format(r.All()) }

// Accessor exposes the ring's fields to the diagram engine. The ring has no
// trailer reference.
func (r *Ring[E]) Accessor() accessor.Accessor {
	return &accessor.Funcs{
		HeadFunc:  func() (accessor.Node, error) { return r.head, nil },
		PrevFunc:  nodeFunc(func(n *node[E]) accessor.Node { return n.prev }),
		DataFunc:  nodeFunc(func(n *node[E]) any { return n.data }),
		NextFunc:  nodeFunc(func(n *node[E]) accessor.Node { return n.next }),
		HeadLabel: "head",
	}
}

func (r *Ring[E]) nodeAt(pos int) *node[E] {
	n := r.head
	if pos <= r.size/2 {
		for range pos {
			n = n.next
		}
		return n
	}
	for range r.size - pos {
		n = n.prev
	}
	return n
}

func (r *Ring[E]) linkBefore(n, at *node[E]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

func (r *Ring[E]) unlink(n *node[E]) {
	if r.size == 1 {
		r.head = nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
		if n == r.head {
			r.head = n.next
		}
	}
	n.prev, n.next = nil, nil
	r.size--
}
