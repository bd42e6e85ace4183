// Package list provides the doubly-linked lists whose internals listview draws.
//
// Two implementations share the [Interface] method set:
//
//   - [List]: a linear list with header (first) and trailer (last) references
//   - [Ring]: a circular list with only a header reference; the last node's
//     next is the header and the header's prev is the last node
//
// Positions are zero-based. Operations that take a position or range return
// an error wrapping [ErrIndexOutOfRange] or [ErrInvalidRange] instead of
// panicking, and removals from an empty list return [ErrEmpty].
//
// Each list exposes its own fields through [List.Accessor] and
// [Ring.Accessor]. The structs are also laid out so that
// accessor.Discover locates the same fields by name.
//
// Lists are not safe for concurrent use.
package list
