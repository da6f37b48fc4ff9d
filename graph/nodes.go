package graph

// blocksFor reports how many subnode blocks are needed to hold n
// subnodes.
func blocksFor(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + SubnodeBlockSize - 1) / SubnodeBlockSize
}

// allocBlocks allocates a chain of n subnode blocks, freeing any
// partial chain and returning ok=false if the pool runs out partway
// through.
func (g *Graph) allocBlocks(n int) (*subnodeBlock, bool) {
	if n == 0 {
		return nil, true
	}

	head, ok := g.blockPool.New()
	if !ok {
		return nil, false
	}

	cur := head
	for i := 1; i < n; i++ {
		next, ok := g.blockPool.New()
		if !ok {
			g.freeBlocks(head)

			return nil, false
		}
		cur.next = next
		cur = next
	}

	return head, true
}

func (g *Graph) freeBlocks(head *subnodeBlock) {
	for head != nil {
		next := head.next
		head.next = nil
		g.blockPool.Free(head)
		head = next
	}
}

// AddNode allocates a new node at coord with the given number of
// subnodes (left zero-valued; populate with SetSubnode). ok is false
// when the node or subnode-block pool is exhausted, per the
// per-graph ceilings documented on the package.
func (g *Graph) AddNode(coord Coordinate, numSubnodes int) (*Node, bool) {
	nBlocks := blocksFor(numSubnodes)
	if rem := g.blockPool.Remaining(); rem >= 0 && rem < nBlocks {
		return nil, false
	}
	if rem := g.nodePool.Remaining(); rem >= 0 && rem < 1 {
		return nil, false
	}

	blocks, ok := g.allocBlocks(nBlocks)
	if !ok {
		return nil, false
	}

	node, ok := g.nodePool.New()
	if !ok {
		g.freeBlocks(blocks)

		return nil, false
	}

	node.Coord = coord
	node.nSubnodes = numSubnodes
	node.subnodes = blocks

	g.nodes = append(g.nodes, node)
	g.index[coord] = node
	g.derivedDirty = true

	return node, true
}

// GetNode looks up the node at coord, if any.
func (g *Graph) GetNode(coord Coordinate) (*Node, bool) {
	n, ok := g.index[coord]

	return n, ok
}

// RemoveNode deletes node and every edge touching it.
func (g *Graph) RemoveNode(node *Node) {
	for node.edges != nil {
		g.removeHalfEdgePair(node.edges)
	}

	delete(g.index, node.Coord)
	for i, n := range g.nodes {
		if n == node {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

			break
		}
	}

	g.freeBlocks(node.subnodes)
	node.subnodes = nil
	node.nSubnodes = 0

	g.nodePool.Free(node)
	g.derivedDirty = true
}
