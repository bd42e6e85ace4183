// Package pkg provides the libraries behind listview, which draws linked
// lists as Graphviz diagrams after every operation.
//
// # Overview
//
// The pkg directory is organized along the path a diagram takes:
//
//  1. [list] - Doubly-linked list and ring implementations
//  2. [accessor] - Uniform read access to head, tail, and node fields
//  3. [snapshot] - Cycle-safe traversal into ranked display levels
//  4. [diff] - Classification of nodes, fields, and references against the previous snapshot
//  5. [render/dot] - DOT emission and Graphviz layout
//  6. [engine] - Snapshot, diff, render, and sink for one structure
//  7. [listview] - A list wrapper that records every operation
//  8. [transcript] - HTML transcripts and in-memory recordings
//  9. [script] - TOML operation scripts
//
// # Architecture
//
//	list operation
//	     ↓
//	[listview] records the operation
//	     ↓
//	[snapshot].Take → [diff].Compute → [render/dot].Render
//	     ↓
//	[engine].Sink ([transcript].Document, [transcript].Recorder)
//
// # Quick Start
//
//	doc, err := transcript.Create("ops.html", transcript.Options{})
//	if err != nil {
//	    return err
//	}
//	v, err := listview.New(list.New[string](), doc, listview.Options{Engine: engine.DefaultOptions()})
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	v.Add("A")
//	v.Add("B")
//	v.Insert(1, "C")
//
// Supporting packages: [config] (TOML settings under the XDG config
// directory), [errors] (coded errors), [observability] (render and sink
// hooks), and [buildinfo].
//
// [list]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/list
// [accessor]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/accessor
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/snapshot
// [diff]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/diff
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/render/dot
// [engine]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/engine
// [listview]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/listview
// [transcript]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/transcript
// [script]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/script
// [config]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/buildinfo
package pkg
