// Package graph implements the multigraph abstraction that every ARC
// grid is lowered into: nodes carrying one or more coloured subnodes,
// undirected half-edges linking adjacent or overlapping nodes, and a
// small set of lazily-recomputed derived properties (background,
// most/least common colour, min/max node size).
//
// Node, edge and subnode-block storage comes from fixed-capacity
// internal/arena pools sized the way the system this package was
// distilled from sizes them (1024 nodes, 4096 half-edges, 1024
// subnode blocks of 11 subnodes each per graph) so that a pathological
// task cannot grow a single graph without bound; exhausting a pool
// surfaces as an (ok=false)/ErrArenaExhausted return rather than a
// panic.
package graph
