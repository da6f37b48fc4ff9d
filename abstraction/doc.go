// Package abstraction turns a raw pixel-grid graph.Graph into the
// higher-level node sets a DSL program reasons about — a single node
// holding every pixel (NoAbstraction), or one node per same-colour connected region
// (ConnectedComponents, with three optional background-removal
// variants) — and back again (UndoAbstraction).
package abstraction
