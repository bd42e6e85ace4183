// Package engine turns successive states of a linked structure into a stream
// of highlighted DOT diagrams.
//
// An [Engine] owns one accessor, one [Sink], and the snapshot of its previous
// render. Each call to [Engine.Render] walks the structure, classifies every
// node and edge against that snapshot, emits the diagram, and hands it to the
// sink. The stored snapshot is replaced only when all of those steps succeed,
// so a failed render leaves the next diff relative to the last good one.
//
// Engines are independent: several may observe different structures, or the
// same structure, without sharing state. An engine is not safe for concurrent
// use; callers serialize renders and must not mutate the structure while a
// render is in progress.
package engine
