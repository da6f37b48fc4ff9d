package abstraction

import "github.com/katalvlaran/arcsynth/graph"

// UndoAbstraction reconstructs a full pixel grid from an abstracted
// graph: every coordinate starts out background-coloured, then every
// subnode of every node of in overwrites its pixel with the node's
// recorded colour. Returns an error if in references a coordinate
// outside its declared width/height.
func UndoAbstraction(in *graph.Graph) (*graph.Graph, error) {
	out := graph.New(in.Width, in.Height, graph.WithBackground(in.BackgroundColor))

	for x := 0; x < in.Width; x++ {
		for y := 0; y < in.Height; y++ {
			coord := graph.Coordinate{Pri: x, Sec: y}
			node, ok := out.AddNode(coord, 1)
			if !ok {
				return nil, graph.ErrArenaExhausted
			}
			_ = node.SetSubnode(0, graph.Subnode{Coord: coord, Color: in.BackgroundColor})
		}
	}

	for _, node := range in.Nodes() {
		for i := 0; i < node.NumSubnodes(); i++ {
			sub, err := node.GetSubnode(i)
			if err != nil {
				return nil, err
			}
			target, ok := out.GetNode(sub.Coord)
			if !ok {
				return nil, graph.ErrNodeNotFound
			}
			if err := target.SetSubnode(0, sub); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
