package transform

import "github.com/katalvlaran/arcsynth/graph"

// RelativePosition reports the direction from node to other, based on
// whichever pair of same-indexed subnodes shares a row or column.
//
// Two quirks are preserved literally from the source this is grounded
// on, rather than "corrected" to what their names might suggest:
//   - it compares node's subnode i against other's subnode i only (not
//     every combination of node/other subnodes) — callers with
//     single-subnode nodes (the common case for a bound neighbour) are
//     unaffected;
//   - a shared column (equal Pri) is resolved to RIGHT/LEFT and a
//     shared row (equal Sec) is resolved to UP/DOWN, which reads as
//     swapped from the axis names but matches the original exactly.
func RelativePosition(node, other *graph.Node) Direction {
	limit := node.NumSubnodes()
	if other.NumSubnodes() < limit {
		limit = other.NumSubnodes()
	}

	for i := 0; i < limit; i++ {
		a, err := node.GetSubnode(i)
		if err != nil {
			continue
		}
		b, err := other.GetSubnode(i)
		if err != nil {
			continue
		}

		if a.Coord.Pri == b.Coord.Pri {
			if a.Coord.Sec < b.Coord.Sec {
				return Right
			} else if a.Coord.Sec > b.Coord.Sec {
				return Left
			}
		} else if a.Coord.Sec == b.Coord.Sec {
			if a.Coord.Pri < b.Coord.Pri {
				return Up
			} else if a.Coord.Pri > b.Coord.Pri {
				return Down
			}
		}
	}

	return NoDirection
}
