// Package binding implements node selectors: functions that scan a
// graph (or one node's neighbours) for the first node matching a
// filter predicate, the way a DSL program picks a dynamic argument —
// a colour or a direction — from some other node in the graph.
package binding
