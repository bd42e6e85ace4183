// Package dot renders classified snapshots as Graphviz DOT diagrams.
//
// # Diagram layout
//
// [Render] produces a strict, left-to-right digraph. Every list node is a
// record with three fields, prev, data and next, and nodes of the same rank
// share a rank=same group anchored by an invisible node. The header and
// trailer references are drawn as black ellipses labeled with the field
// names the accessor reports; an absent reference points at an empty-set
// marker. Edges leave from the center of the next or prev field and carry a
// dot at their tail.
//
// New elements are drawn in [Options.NewColor] and modified elements in
// [Options.ModifiedColor]:
//
//	b, _ := snapshot.Take(acc, snapshot.Options{})
//	r := diff.Compute(b.Snapshot(), prev)
//	src := dot.Render(b, r, dot.DefaultOptions())
//
// # Export
//
// [Export], [RenderSVG] and [RenderPNG] lay out DOT source in-process with
// [github.com/goccy/go-graphviz]; no Graphviz installation is required.
package dot
