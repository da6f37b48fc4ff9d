// Package filter implements the node predicates a DSL program chains
// together to select which nodes a transform applies to: by colour,
// by size, by degree, and "any neighbour matches" variants of each.
package filter
