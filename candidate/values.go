package candidate

import (
	"sort"

	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/filter"
	"github.com/katalvlaran/arcsynth/graph"
	"github.com/katalvlaran/arcsynth/task"
)

// boolValues is the fixed two-element candidate set for any
// exclude/overlap slot.
var boolValues = []bool{false, true}

// colorValues is the fixed candidate set for any colour-consuming
// filter or transform slot: the ten palette literals plus the two
// derived-colour sentinels. BACKGROUND is deliberately left out,
// matching the enumeration rule this is grounded on.
func colorValues() []graph.Color {
	values := make([]graph.Color, 0, 12)
	for c := graph.Color(0); c < 10; c++ {
		values = append(values, c)
	}

	return append(values, graph.MostCommon, graph.LeastCommon)
}

// trainGraphs abstracts every training input, in order, via ab.
func trainGraphs(t *task.Task, ab abstraction.Func) ([]*graph.Graph, error) {
	graphs := make([]*graph.Graph, len(t.Train))
	for i, ex := range t.Train {
		pixels, err := abstraction.FromGrid(ex.Input)
		if err != nil {
			return nil, err
		}
		g, err := ab(pixels)
		if err != nil {
			return nil, err
		}
		graphs[i] = g
	}

	return graphs, nil
}

// seenSizesAndDegrees collects every distinct subnode count and edge
// degree observed across graphs, sorted for deterministic iteration.
func seenSizesAndDegrees(graphs []*graph.Graph) (sizes, degrees []int) {
	sizeSet := make(map[int]bool)
	degreeSet := make(map[int]bool)
	for _, g := range graphs {
		for _, n := range g.Nodes() {
			sizeSet[n.NumSubnodes()] = true
			degreeSet[n.Degree()] = true
		}
	}
	for s := range sizeSet {
		sizes = append(sizes, s)
	}
	for d := range degreeSet {
		degrees = append(degrees, d)
	}
	sort.Ints(sizes)
	sort.Ints(degrees)

	return sizes, degrees
}

// sizeValues appends the derived-size sentinels to the sizes actually
// observed across the training graphs.
func sizeValues(sizes []int) []int {
	return append(append([]int{}, sizes...), filter.SizeMax, filter.SizeMin, filter.SizeOdd)
}

// filterMatchesGraph reports whether at least one node in g satisfies
// pred, the graph-level counterpart of filter.Apply's node-level test.
func filterMatchesGraph(g *graph.Graph, pred filter.Predicate) bool {
	for _, n := range g.Nodes() {
		if filter.Apply(pred, g, n) {
			return true
		}
	}

	return false
}

// matchesAllGraphs reports whether pred holds (per filterMatchesGraph)
// in every one of graphs.
func matchesAllGraphs(graphs []*graph.Graph, pred filter.Predicate) bool {
	for _, g := range graphs {
		if !filterMatchesGraph(g, pred) {
			return false
		}
	}

	return true
}
