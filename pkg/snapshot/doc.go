// Package snapshot captures the reachable part of a linked structure as
// engine-owned [GraphNode] values arranged in display levels.
//
// # Building
//
// [Take] walks the structure through an [accessor.Accessor], starting at the
// header with rank 0 and, when the structure has a trailer, at the trailer
// with the largest rank seen so far. Each newly discovered node is copied into
// a GraphNode (prev, data, and next are read once, at discovery) and placed in
// the [LevelTable] at its rank. From there the walk continues to the node's
// next neighbor at rank+1 and then to its prev neighbor at rank-1.
//
// A node is discovered at most once: handles already in the identity map are
// not explored again, so circular structures terminate and every reachable
// node appears exactly once. Ranks follow first-discovery order; for
// structures reachable along paths of different lengths they are a layout
// approximation rather than shortest distances.
//
// # Snapshots
//
// A [Snapshot] is what survives a render: the identity-keyed node map plus the
// raw header and trailer handles. The engine keeps the previous snapshot and
// replaces it wholesale after each successful render.
package snapshot
