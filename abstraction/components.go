package abstraction

import "github.com/katalvlaran/arcsynth/graph"

const numPaletteColors = 10

// ccConfig controls which same-colour components matching the
// background are dropped from the output.
type ccConfig struct {
	removeCorners bool
	removeEdges   bool
	removeAll     bool
}

// Option configures ConnectedComponents.
type Option func(*ccConfig)

// RemoveBackgroundCorners drops a background component if any of its
// pixels sits in a grid corner.
func RemoveBackgroundCorners() Option { return func(c *ccConfig) { c.removeCorners = true } }

// RemoveBackgroundEdges drops a background component if any of its
// pixels touches the grid's outer edge.
func RemoveBackgroundEdges() Option { return func(c *ccConfig) { c.removeEdges = true } }

// RemoveBackgroundAll drops every background-coloured component
// outright.
func RemoveBackgroundAll() Option { return func(c *ccConfig) { c.removeAll = true } }

// ConnectedComponents groups orthogonally-adjacent same-coloured
// pixels into one node each, then links components that face each
// other with nothing but background pixels between them. Applying no
// options keeps every component, including background ones.
func ConnectedComponents(opts ...Option) Func {
	cfg := &ccConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(in *graph.Graph) (*graph.Graph, error) {
		out := graph.New(in.Width, in.Height, graph.WithMulticolor(), graph.WithBackground(in.BackgroundColor))

		visited := make(map[*graph.Node]bool, in.NumNodes())
		for color := 0; color < numPaletteColors; color++ {
			componentIdx := 0
			for _, node := range in.Nodes() {
				if visited[node] {
					continue
				}
				sub, err := node.GetSubnode(0)
				if err != nil {
					return nil, err
				}
				if int(sub.Color) != color {
					continue
				}

				members := sameColorComponent(in, node, graph.Color(color), visited)

				excluded := false
				if graph.Color(color) == in.BackgroundColor {
					excluded = cfg.excludes(in, members)
				}
				if !excluded {
					comp, ok := out.AddNode(graph.Coordinate{Pri: color, Sec: componentIdx}, len(members))
					if !ok {
						return nil, graph.ErrArenaExhausted
					}
					for i, m := range members {
						if err := comp.SetSubnode(i, graph.Subnode{Coord: m.Coord, Color: graph.Color(color)}); err != nil {
							return nil, err
						}
					}
					componentIdx++
				}
			}
		}

		linkNodesWithoutIntermediary(out, in)

		return out, nil
	}
}

// excludes decides whether a background-coloured component should be
// dropped, per the configured removal variant.
func (c *ccConfig) excludes(in *graph.Graph, members []*graph.Node) bool {
	if c.removeAll {
		return true
	}
	if !c.removeCorners && !c.removeEdges {
		return false
	}
	for _, m := range members {
		if c.removeEdges {
			if m.Coord.Pri == 0 || m.Coord.Sec == 0 || m.Coord.Pri == in.Width-1 || m.Coord.Sec == in.Height-1 {
				return true
			}
		} else if c.removeCorners {
			if (m.Coord.Pri == 0 || m.Coord.Pri == in.Width-1) && (m.Coord.Sec == 0 || m.Coord.Sec == in.Height-1) {
				return true
			}
		}
	}

	return false
}

// sameColorComponent walks in's adjacency from start, collecting every
// reachable node of the same colour via an explicit stack (iterative
// depth-first search, equivalent to a recursive same-colour flood
// fill but without a call-stack depth tied to component size).
func sameColorComponent(in *graph.Graph, start *graph.Node, color graph.Color, visited map[*graph.Node]bool) []*graph.Node {
	visited[start] = true
	stack := []*graph.Node{start}
	var members []*graph.Node

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, node)

		for _, e := range node.Edges() {
			if visited[e.Peer] {
				continue
			}
			peerSub, err := e.Peer.GetSubnode(0)
			if err != nil || peerSub.Color != color {
				continue
			}
			visited[e.Peer] = true
			stack = append(stack, e.Peer)
		}
	}

	return members
}
