package filter

import "github.com/katalvlaran/arcsynth/graph"

// Derived-size sentinels, the filter-level counterpart of
// graph.Background/MostCommon/LeastCommon.
const (
	SizeMax = -1
	SizeMin = -2
	SizeOdd = -3
)

// Predicate reports whether node should be kept by a filter chain.
type Predicate func(g *graph.Graph, node *graph.Node) bool

// Chain ANDs predicates together; an empty chain matches everything.
func Chain(preds ...Predicate) Predicate {
	return func(g *graph.Graph, node *graph.Node) bool {
		for _, p := range preds {
			if !p(g, node) {
				return false
			}
		}

		return true
	}
}

// Apply runs pred against node.
func Apply(pred Predicate, g *graph.Graph, node *graph.Node) bool {
	return pred(g, node)
}

// Matches is sugar for Apply(Chain(preds...), g, node).
func Matches(g *graph.Graph, node *graph.Node, preds ...Predicate) bool {
	return Chain(preds...)(g, node)
}

// resolveColor turns a derived-colour sentinel into a concrete
// palette colour. Background resolves against the graph's declared
// BackgroundColor field rather than its derived properties.
func resolveColor(g *graph.Graph, color graph.Color) graph.Color {
	switch color {
	case graph.Background:
		return g.BackgroundColor
	case graph.MostCommon:
		return g.DerivedProperties().MostCommon
	case graph.LeastCommon:
		return g.DerivedProperties().LeastCommon
	default:
		return color
	}
}

// ByColor matches nodes whose colour is color (or, for a multicolour
// graph, any of whose subnode colours is color). exclude inverts the
// match.
func ByColor(color graph.Color, exclude bool) Predicate {
	return func(g *graph.Graph, node *graph.Node) bool {
		want := resolveColor(g, color)

		if g.Multicolor {
			anyMatch := false
			for i := 0; i < node.NumSubnodes(); i++ {
				sub, err := node.GetSubnode(i)
				if err != nil {
					continue
				}
				if sub.Color == want {
					anyMatch = true

					break
				}
			}
			if exclude {
				return !anyMatch
			}

			return anyMatch
		}

		sub, err := node.GetSubnode(0)
		if err != nil {
			return false
		}
		if exclude {
			return sub.Color != want
		}

		return sub.Color == want
	}
}

// BySize matches nodes whose subnode count is size, or one of the
// derived sizes SizeMax/SizeMin/SizeOdd. exclude inverts the match
// (SizeOdd/exclude combination flips to an even-size test directly,
// matching the source's special-cased branch).
func BySize(size int, exclude bool) Predicate {
	return func(g *graph.Graph, node *graph.Node) bool {
		n := node.NumSubnodes()

		switch size {
		case SizeOdd:
			if exclude {
				return n%2 == 0
			}

			return n%2 != 0
		case SizeMax:
			if exclude {
				return n != g.DerivedProperties().MaxSize
			}

			return n == g.DerivedProperties().MaxSize
		case SizeMin:
			if exclude {
				return n != g.DerivedProperties().MinSize
			}

			return n == g.DerivedProperties().MinSize
		default:
			if exclude {
				return n != size
			}

			return n == size
		}
	}
}

// ByDegree matches nodes with exactly degree edges. exclude inverts
// the match.
func ByDegree(degree int, exclude bool) Predicate {
	return func(_ *graph.Graph, node *graph.Node) bool {
		if exclude {
			return node.Degree() != degree
		}

		return node.Degree() == degree
	}
}

// anyNeighborMatches reports whether any of node's neighbours
// satisfies pred.
func anyNeighborMatches(g *graph.Graph, node *graph.Node, pred Predicate) bool {
	for _, e := range node.Edges() {
		if pred(g, e.Peer) {
			return true
		}
	}

	return false
}

// ByNeighborColor matches nodes with at least one neighbour of the
// given colour. exclude inverts the match (true when no neighbour
// matches).
func ByNeighborColor(color graph.Color, exclude bool) Predicate {
	base := ByColor(color, false)

	return func(g *graph.Graph, node *graph.Node) bool {
		match := anyNeighborMatches(g, node, base)
		if exclude {
			return !match
		}

		return match
	}
}

// ByNeighborSize matches nodes with at least one neighbour of the
// given size. exclude inverts the match.
func ByNeighborSize(size int, exclude bool) Predicate {
	base := BySize(size, false)

	return func(g *graph.Graph, node *graph.Node) bool {
		match := anyNeighborMatches(g, node, base)
		if exclude {
			return !match
		}

		return match
	}
}

// ByNeighborDegree matches nodes with at least one neighbour of the
// given degree. exclude inverts the match.
func ByNeighborDegree(degree int, exclude bool) Predicate {
	base := ByDegree(degree, false)

	return func(g *graph.Graph, node *graph.Node) bool {
		match := anyNeighborMatches(g, node, base)
		if exclude {
			return !match
		}

		return match
	}
}
