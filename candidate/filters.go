package candidate

import (
	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/filter"
	"github.com/katalvlaran/arcsynth/task"
)

// EnumerateFilters builds every filter predicate, and every
// two-predicate conjunction of kept predicates, that matches at least
// one node in every training graph of t once ab has been applied to
// each training input.
func EnumerateFilters(t *task.Task, ab abstraction.Func) ([]filter.Predicate, error) {
	graphs, err := trainGraphs(t, ab)
	if err != nil {
		return nil, err
	}

	sizes, degrees := seenSizesAndDegrees(graphs)
	sizes = sizeValues(sizes)
	colors := colorValues()

	var single []filter.Predicate
	keep := func(p filter.Predicate) {
		if matchesAllGraphs(graphs, p) {
			single = append(single, p)
		}
	}

	for _, c := range colors {
		for _, ex := range boolValues {
			keep(filter.ByColor(c, ex))
			keep(filter.ByNeighborColor(c, ex))
		}
	}
	for _, s := range sizes {
		for _, ex := range boolValues {
			keep(filter.BySize(s, ex))
			keep(filter.ByNeighborSize(s, ex))
		}
	}
	for _, d := range degrees {
		for _, ex := range boolValues {
			keep(filter.ByDegree(d, ex))
			keep(filter.ByNeighborDegree(d, ex))
		}
	}

	result := make([]filter.Predicate, len(single))
	copy(result, single)

	// Two-predicate conjunctions: chain f2 -> f1, kept iff the
	// conjunction still matches every training graph.
	for _, f1 := range single {
		for _, f2 := range single {
			chain := filter.Chain(f2, f1)
			if matchesAllGraphs(graphs, chain) {
				result = append(result, chain)
			}
		}
	}

	return result, nil
}
