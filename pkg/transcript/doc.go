// Package transcript records list operations and their diagrams.
//
// A [Document] writes a self-contained HTML page: a preamble with the start
// time and a color legend, one heading per [Operation] (h2 when a diagram
// follows, h4 otherwise) naming the operation, its time and the caller's
// file:line, and one embedded diagram per render. Diagrams are laid out in
// the browser with d3-graphviz, or embedded as SVG produced in-process when
// [Options.InlineSVG] is set. [Document.Close] writes the closing markup
// exactly once.
//
// A [Recorder] keeps the same entries in memory for interactive browsing and
// tests.
//
// Both types implement [engine.Sink].
package transcript
