package graph

// GetSubnode returns node's subnode at idx.
func (n *Node) GetSubnode(idx int) (Subnode, error) {
	if idx < 0 || idx >= n.nSubnodes {
		return Subnode{}, ErrSubnodeOutOfRange
	}

	block := n.subnodes
	for idx >= SubnodeBlockSize {
		idx -= SubnodeBlockSize
		block = block.next
	}

	return Subnode{Coord: block.coords[idx], Color: block.colors[idx]}, nil
}

// SetSubnode overwrites node's subnode at idx.
func (n *Node) SetSubnode(idx int, s Subnode) error {
	if idx < 0 || idx >= n.nSubnodes {
		return ErrSubnodeOutOfRange
	}

	block := n.subnodes
	for idx >= SubnodeBlockSize {
		idx -= SubnodeBlockSize
		block = block.next
	}
	block.coords[idx] = s.Coord
	block.colors[idx] = s.Color

	return nil
}

// SetSubnodes replaces node's entire subnode list with the given
// values, growing or shrinking its block chain as needed. ok is false
// if the subnode-block pool cannot satisfy the new chain length, in
// which case node is left unchanged.
func (g *Graph) SetSubnodes(node *Node, subs []Subnode) bool {
	nBlocks := blocksFor(len(subs))
	newBlocks, ok := g.allocBlocks(nBlocks)
	if !ok {
		return false
	}

	block := newBlocks
	for i, s := range subs {
		if i > 0 && i%SubnodeBlockSize == 0 {
			block = block.next
		}
		block.coords[i%SubnodeBlockSize] = s.Coord
		block.colors[i%SubnodeBlockSize] = s.Color
	}

	g.freeBlocks(node.subnodes)
	node.subnodes = newBlocks
	node.nSubnodes = len(subs)
	g.derivedDirty = true

	return true
}
