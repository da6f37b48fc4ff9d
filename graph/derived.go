package graph

// numPaletteColors bounds the colour histogram; palette colours are
// always 0-9, matching the task grid format.
const numPaletteColors = 10

// DerivedProperties returns the graph's background/most-common/
// least-common colour and min/max node size, recomputing them on the
// first call after a mutation and caching the result until the next
// one.
//
// The least-common colour carries a deliberately preserved quirk: its
// running minimum is seeded from colour 0's count before the scan
// starts, so if colour 0 is absent from the graph entirely, the
// result can still report 0 as least common — no colour with a zero
// count ever overwrites it, since the comparison only runs for
// colours that are actually present. Later callers should not rely on
// LeastCommon naming a colour that truly occurs in the graph.
func (g *Graph) DerivedProperties() DerivedProps {
	if !g.derivedDirty {
		return g.derived
	}

	var counts [numPaletteColors]int
	minSize, maxSize := -1, -1
	for _, node := range g.nodes {
		if minSize < 0 || node.nSubnodes < minSize {
			minSize = node.nSubnodes
		}
		if maxSize < 0 || node.nSubnodes > maxSize {
			maxSize = node.nSubnodes
		}
		block := node.subnodes
		idx := 0
		for i := 0; i < node.nSubnodes; i++ {
			if idx == SubnodeBlockSize {
				block = block.next
				idx = 0
			}
			counts[block.colors[idx]]++
			idx++
		}
	}

	maxColor, minColor := 0, 0
	nMax, nMin := counts[0], counts[0]
	for i := 1; i < numPaletteColors; i++ {
		if counts[i] > 0 {
			if nMax <= counts[i] {
				maxColor = i
				nMax = counts[i]
			}
			if nMin >= counts[i] {
				minColor = i
				nMin = counts[i]
			}
		}
	}

	var background Color
	if counts[0] > 0 {
		background = 0
	} else {
		background = Color(maxColor)
	}

	g.derived = DerivedProps{
		Background:  background,
		MostCommon:  Color(maxColor),
		LeastCommon: Color(minColor),
		MinSize:     minSize,
		MaxSize:     maxSize,
	}
	g.derivedDirty = false

	return g.derived
}
