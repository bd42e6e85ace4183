// Package render groups the diagram renderers.
//
// The [dot] subpackage turns a snapshot and its diff into Graphviz DOT with
// record-shaped nodes, a header and optional tail sentinel, and one
// rank=same cluster per display level. It also lays DOT out as SVG, PNG, or
// JPG through the embedded Graphviz in goccy/go-graphviz.
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/listview/pkg/render/dot
package render
