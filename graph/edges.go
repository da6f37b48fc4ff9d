package graph

// Edge is a read-only view of one direction of a connection between
// two nodes, as seen from the node whose Edges() produced it.
type Edge struct {
	Peer      *Node
	Direction EdgeDirection
}

// Edges returns node's neighbours and how each one touches it.
func (n *Node) Edges() []Edge {
	out := make([]Edge, 0, n.nEdges)
	for e := n.edges; e != nil; e = e.next {
		out = append(out, Edge{Peer: e.peer, Direction: e.direction})
	}

	return out
}

// AddEdge links from and to with a pair of half-edges in the given
// direction. ok is false when the half-edge pool is exhausted.
func (g *Graph) AddEdge(from, to *Node, direction EdgeDirection) bool {
	if rem := g.edgePool.Remaining(); rem >= 0 && rem < 2 {
		return false
	}

	fromTo, ok := g.edgePool.New()
	if !ok {
		return false
	}
	toFrom, ok := g.edgePool.New()
	if !ok {
		g.edgePool.Free(fromTo)

		return false
	}

	fromTo.next = from.edges
	fromTo.swap = toFrom
	fromTo.peer = to
	fromTo.direction = direction
	from.edges = fromTo
	from.nEdges++

	toFrom.next = to.edges
	toFrom.swap = fromTo
	toFrom.peer = from
	toFrom.direction = direction
	to.edges = toFrom
	to.nEdges++

	return true
}

// HasEdge reports whether any edge connects from and to.
func (g *Graph) HasEdge(from, to *Node) bool {
	for e := from.edges; e != nil; e = e.next {
		if e.peer == to {
			return true
		}
	}

	return false
}

// RemoveEdge deletes the edge between from and to, if one exists, and
// reports whether it found one to remove.
func (g *Graph) RemoveEdge(from, to *Node) bool {
	for e := from.edges; e != nil; e = e.next {
		if e.peer == to {
			g.removeHalfEdgePair(e)

			return true
		}
	}

	return false
}

// removeHalfEdgePair unlinks e and its swap from both endpoints' edge
// lists and returns the pair to the pool.
func (g *Graph) removeHalfEdgePair(e *halfEdge) {
	other := e.swap

	unlinkHalfEdge(&e.peer.edges, other)
	unlinkHalfEdge(&other.peer.edges, e)
	e.peer.nEdges--
	other.peer.nEdges--

	g.edgePool.Free(e)
	g.edgePool.Free(other)
}

func unlinkHalfEdge(head **halfEdge, target *halfEdge) {
	if *head == target {
		*head = target.next

		return
	}
	for cur := *head; cur != nil; cur = cur.next {
		if cur.next == target {
			cur.next = target.next

			return
		}
	}
}
