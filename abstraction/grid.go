package abstraction

import "github.com/katalvlaran/arcsynth/graph"

// FromGrid builds a one-node-per-pixel graph from a rectangular colour
// grid, wiring horizontal and vertical edges between orthogonally
// adjacent pixels the way a raw ARC grid is lowered into the graph
// engine before any abstraction runs.
//
// grid is indexed grid[row][col]; every row must have the same
// length, and rows/cols must each be at least 1.
func FromGrid(grid [][]graph.Color) (*graph.Graph, error) {
	nRows := len(grid)
	if nRows == 0 {
		return nil, ErrEmptyGrid
	}
	nCols := len(grid[0])
	if nCols == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range grid {
		if len(row) != nCols {
			return nil, ErrNonRectangularGrid
		}
	}

	g := graph.New(nCols, nRows, graph.WithBackground(0))

	for row := 0; row < nRows; row++ {
		for col := 0; col < nCols; col++ {
			coord := graph.Coordinate{Pri: col, Sec: row}
			node, ok := g.AddNode(coord, 1)
			if !ok {
				return nil, graph.ErrArenaExhausted
			}
			_ = node.SetSubnode(0, graph.Subnode{Coord: coord, Color: grid[row][col]})

			if col > 0 {
				left, _ := g.GetNode(graph.Coordinate{Pri: col - 1, Sec: row})
				if !g.AddEdge(left, node, graph.Horizontal) {
					return nil, graph.ErrArenaExhausted
				}
			}
			if row > 0 {
				top, _ := g.GetNode(graph.Coordinate{Pri: col, Sec: row - 1})
				if !g.AddEdge(top, node, graph.Vertical) {
					return nil, graph.ErrArenaExhausted
				}
			}
		}
	}

	return g, nil
}
