// Package accessor defines how the diagram engine reads a caller's linked structure.
//
// # Overview
//
// The engine never dereferences a caller's nodes itself. Every field it needs
// goes through an [Accessor]: the header and optional trailer references on
// the list, and the prev/data/next fields on each node. A node handle
// ([Node]) is opaque to the engine; it is only compared for identity and used
// as a map key, so it must be a comparable value (a pointer in practice).
//
// # Adapters
//
// Two adapters are provided:
//
//   - [Funcs]: wire closures directly, for structures that can expose their own fields
//   - [Discover]: locate the fields of an arbitrary struct by name, without modifying it
//
// Discover is the heuristic path. It scans the list struct for a header field
// whose lower-cased name contains one of [DefaultNames].Head ("begin", "first",
// "front", "head", "init"), an optional trailer matching [DefaultNames].Tail,
// and then the prev/data/next fields on the header's node type. All of that
// happens once, at construction; the returned [Reflect] accessor only reads
// field values afterwards.
//
//	acc, err := accessor.Discover(myList)
//	if err != nil {
//	    // CONFIGURATION_FAILURE: the structure cannot be rendered
//	}
//
// # Absence
//
// A nil interface and a typed nil pointer are both treated as "absent" by
// [IsAbsent]. Adapters normalize absent values to an untyped nil so the engine
// can compare handles with ==.
package accessor
