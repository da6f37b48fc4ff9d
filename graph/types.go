package graph

import (
	"errors"

	"github.com/katalvlaran/arcsynth/internal/arena"
)

// Per-graph allocation ceilings, preserved from the system this
// package was distilled from.
const (
	NodesAlloc         = 1024
	EdgesAlloc         = 4096
	SubnodeBlockSize   = 11
	SubnodeBlocksAlloc = 1024
)

// Sentinel errors for graph operations.
var (
	// ErrArenaExhausted is returned by AddNode/AddEdge when the
	// relevant pool has hit its per-graph ceiling.
	ErrArenaExhausted = errors.New("graph: arena exhausted")

	// ErrNodeNotFound indicates a lookup referenced a coordinate with
	// no backing node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSubnodeOutOfRange indicates a subnode index past a node's
	// subnode count.
	ErrSubnodeOutOfRange = errors.New("graph: subnode index out of range")
)

// Color is a palette index in [0, 9], or one of the three negative
// sentinels that ask a filter or transform to resolve a colour
// dynamically against a graph's derived properties.
type Color int8

// Derived-colour sentinels. Only meaningful as filter/transform
// arguments; never stored on a Subnode.
const (
	Background  Color = -1
	MostCommon  Color = -2
	LeastCommon Color = -3
)

// IsSentinel reports whether c must be resolved dynamically rather
// than compared directly.
func (c Color) IsSentinel() bool {
	return c < 0
}

// Coordinate addresses a pixel by primary (column) and secondary
// (row) axis, matching the coord.pri/coord.sec convention of the
// grid this package abstracts.
type Coordinate struct {
	Pri int
	Sec int
}

// Subnode is one coloured pixel owned by a Node.
type Subnode struct {
	Coord Coordinate
	Color Color
}

// EdgeDirection classifies how two nodes touch.
type EdgeDirection int

const (
	Horizontal EdgeDirection = iota
	Vertical
	Overlapping
)

// DerivedProps are histogram-derived facts about a Graph's current
// node set, recomputed lazily on the first read after a mutation.
type DerivedProps struct {
	Background  Color
	MostCommon  Color
	LeastCommon Color
	MinSize     int
	MaxSize     int
}

// subnodeBlock holds up to SubnodeBlockSize subnodes; nodes with more
// subnodes chain additional blocks through next.
type subnodeBlock struct {
	next   *subnodeBlock
	coords [SubnodeBlockSize]Coordinate
	colors [SubnodeBlockSize]Color
}

// halfEdge is one direction of an undirected connection between two
// nodes. Adding an edge allocates a pair of half-edges that point at
// each other through swap.
type halfEdge struct {
	next      *halfEdge
	swap      *halfEdge
	peer      *Node
	direction EdgeDirection
}

// Node is a graph vertex: a coordinate anchor plus one or more
// coloured subnodes and the half-edges reaching its neighbours.
type Node struct {
	Coord     Coordinate
	nSubnodes int
	subnodes  *subnodeBlock
	edges     *halfEdge
	nEdges    int
}

// NumSubnodes reports how many pixels this node represents.
func (n *Node) NumSubnodes() int { return n.nSubnodes }

// Degree reports how many edges touch this node.
func (n *Node) Degree() int { return n.nEdges }

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithMulticolor marks a Graph's nodes as potentially spanning more
// than one colour (set by abstractions like connected components that
// build multi-pixel nodes); the default is single-colour nodes, as
// produced by a plain pixel grid.
func WithMulticolor() GraphOption {
	return func(g *Graph) { g.Multicolor = true }
}

// WithBackground sets the graph's declared background colour, used by
// filters resolving the Background sentinel. Grids default to 0.
func WithBackground(c Color) GraphOption {
	return func(g *Graph) { g.BackgroundColor = c }
}

// Graph is a mutable multigraph over a fixed-size coordinate plane.
//
// BackgroundColor is a declared field threaded through from
// construction (grids always use 0), kept distinct from
// DerivedProps.Background: filters resolving the Background sentinel
// read this field directly rather than the histogram-derived value,
// matching the literal behaviour of the source this package is
// grounded on.
type Graph struct {
	Width           int
	Height          int
	Multicolor      bool
	BackgroundColor Color

	nodes []*Node
	index map[Coordinate]*Node

	derivedDirty bool
	derived      DerivedProps

	nodePool  *arena.Pool[Node]
	blockPool *arena.Pool[subnodeBlock]
	edgePool  *arena.Pool[halfEdge]
}

// New constructs an empty Graph of the given dimensions.
func New(width, height int, opts ...GraphOption) *Graph {
	g := &Graph{
		Width:  width,
		Height: height,
		index:  make(map[Coordinate]*Node),

		nodePool:  arena.New[Node](NodesAlloc, 1),
		blockPool: arena.New[subnodeBlock](SubnodeBlocksAlloc, 1),
		edgePool:  arena.New[halfEdge](EdgesAlloc, 1),
	}
	g.derivedDirty = true

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NumNodes reports how many nodes are currently live.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns all live nodes in allocation order.
//
// Contract: the returned slice must be treated as read-only; callers
// wanting to mutate graph topology use AddNode/RemoveNode/AddEdge.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}
