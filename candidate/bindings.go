package candidate

import (
	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/binding"
	"github.com/katalvlaran/arcsynth/filter"
	"github.com/katalvlaran/arcsynth/graph"
	"github.com/katalvlaran/arcsynth/task"
)

// bindingMatchesGraph reports whether at least one node in g passes
// the always-true filter chain and yields a non-null result from
// call, the graph-level counterpart of binding_matches with an empty
// filter.
func bindingMatchesGraph(g *graph.Graph, call binding.Call) bool {
	always := filter.Chain()
	for _, n := range g.Nodes() {
		if filter.Apply(always, g, n) && binding.Matches(call, g, n) {
			return true
		}
	}

	return false
}

func bindingMatchesAllGraphs(graphs []*graph.Graph, call binding.Call) bool {
	for _, g := range graphs {
		if !bindingMatchesGraph(g, call) {
			return false
		}
	}

	return true
}

// EnumerateBindings builds every binding call that selects a node in
// every training graph of t once ab has been applied to each training
// input.
func EnumerateBindings(t *task.Task, ab abstraction.Func) ([]binding.Call, error) {
	graphs, err := trainGraphs(t, ab)
	if err != nil {
		return nil, err
	}

	sizes, degrees := seenSizesAndDegrees(graphs)
	sizes = sizeValues(sizes)
	colors := colorValues()

	var calls []binding.Call
	keep := func(c binding.Call) {
		if bindingMatchesAllGraphs(graphs, c) {
			calls = append(calls, c)
		}
	}

	for _, s := range sizes {
		for _, ex := range boolValues {
			keep(binding.NodeBySize(s, ex))
			keep(binding.NeighborBySize(s, ex))
		}
	}
	for _, c := range colors {
		for _, ex := range boolValues {
			keep(binding.NeighborByColor(c, ex))
		}
	}
	for _, d := range degrees {
		for _, ex := range boolValues {
			keep(binding.NeighborByDegree(d, ex))
		}
	}

	return calls, nil
}
