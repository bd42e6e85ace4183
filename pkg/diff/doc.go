// Package diff classifies the nodes and edges of a snapshot against the
// snapshot of the previous render.
//
// Every node of the current snapshot receives a [NodeDiff] with independent
// statuses for the node itself, its payload, and its next and prev edges:
//
//   - a node whose handle was not in the previous snapshot is [New], and so are
//     its payload and both edges
//   - otherwise the payload is [Modified] when it changed presence or value,
//     and an edge is Modified when it now targets a different handle
//   - everything else is [Unchanged]
//
// The header and trailer reference edges are Modified whenever the handle
// they reference differs from the previous render, including a change between
// absent and present. Nodes present previously but no longer reachable are
// only counted in [Summary.Removed]; they do not appear in the result.
package diff
