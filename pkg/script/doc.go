// Package script replays list operations written in TOML.
//
// A script names the kind of list and a sequence of operations:
//
//	kind = "linked"   # or "circular"
//
//	[[op]]
//	call = "add"
//	args = ["A"]
//
//	[[op]]
//	call = "insert"
//	args = [0, "B"]
//
// Calls use the transcript names of the operations: add, addFirst, addLast,
// insert, set, remove, removeFirst, removeLast, removeRange, makeEmpty, size,
// get, indexOf, getSubList, equals, toString and iterator. remove takes either
// a position (an integer) or an item. Items may be strings, integers, floats
// or booleans and are stored in their textual form.
//
// [Run] creates the list, wraps it in a listview.View, and applies every
// operation, attributing each transcript entry to the line of its [[op]]
// table.
package script
