package driver

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/candidate"
	"github.com/katalvlaran/arcsynth/filter"
	"github.com/katalvlaran/arcsynth/graph"
	"github.com/katalvlaran/arcsynth/guide"
	"github.com/katalvlaran/arcsynth/task"
)

// MaxCandidateWidth bounds the guide's filter/transform choice points.
// A sampled index at or beyond however many candidates a task/
// abstraction pair actually enumerates is masked out via ChooseFrom,
// so this only needs to be large enough to cover realistic candidate
// counts, not exact.
const MaxCandidateWidth = 64

// BuildGuide registers the three choice points the driver loop
// consults every iteration — which abstraction, which filter
// candidate, which transform candidate — against backbone.
func BuildGuide(backbone guide.Backbone, epsilon float64) *guide.Guide {
	return guide.NewBuilder().
		AddChoice(len(abstraction.Registry), "abstraction").
		AddChoice(MaxCandidateWidth, "filter").
		AddChoice(MaxCandidateWidth, "transform").
		Build(backbone, epsilon)
}

// Sample is one completed driver iteration, matching the CSV header
// task,example,loss,reconstructed,abstraction,filter,transform.
type Sample struct {
	Task          string
	Example       int
	Loss          float64
	Reconstructed bool
	Abstraction   string
	Filter        int
	Transform     int
}

// Result accumulates every iteration's sample.
type Result struct {
	Samples []Sample
}

func candidateMask(n, width int) []bool {
	mask := make([]bool, width)
	for i := 0; i < n && i < width; i++ {
		mask[i] = true
	}

	return mask
}

func toPixels(g task.Grid) guide.Pixels {
	if len(g) == 0 {
		return guide.Pixels{}
	}

	height := len(g)
	width := len(g[0])
	indices := make([]int8, 0, width*height)
	for _, row := range g {
		for _, c := range row {
			indices = append(indices, int8(c))
		}
	}

	return guide.Pixels{Width: width, Height: height, Indices: indices}
}

// reconstructionMatches compares a reconstructed pixel graph against
// the target grid, cell by cell.
func reconstructionMatches(reconstructed *graph.Graph, target task.Grid) bool {
	for row := 0; row < len(target); row++ {
		for col := 0; col < len(target[row]); col++ {
			node, ok := reconstructed.GetNode(graph.Coordinate{Pri: col, Sec: row})
			if !ok {
				return false
			}
			sub, err := node.GetSubnode(0)
			if err != nil || sub.Color != target[row][col] {
				return false
			}
		}
	}

	return true
}

// drainRemaining observes -1 ("not used") for every choice point from
// the trail's current cursor through the end, preserving the guide's
// invariant that every path observes every registered choice point.
func drainRemaining(ctx context.Context, trail *guide.Trail) {
	for !trail.Done() {
		_ = trail.ObserveChoice(ctx, -1)
	}
}

// runOnce executes one pass of the sample-abstract-filter-transform-
// observe loop against a randomly chosen task and training example.
// ok is false only when tasks is empty or the chosen task has no
// training examples to sample from.
func runOnce(ctx context.Context, tasks []*task.Task, g *guide.Guide, rng *rand.Rand) (Sample, bool) {
	var t *task.Task
	for attempt := 0; attempt < len(tasks); attempt++ {
		pick := tasks[rng.Intn(len(tasks))]
		if len(pick.Train) > 0 {
			t = pick

			break
		}
	}
	if t == nil {
		return Sample{}, false
	}

	exampleIdx := rng.Intn(len(t.Train))
	ex := t.Train[exampleIdx]

	trail := g.NewTrail(ctx, toPixels(ex.Input), toPixels(ex.Output), rng)
	sample := Sample{Task: t.Name, Example: exampleIdx}

	reject := func() (Sample, bool) {
		drainRemaining(ctx, trail)
		loss, _ := trail.Complete(ctx, false)
		sample.Loss = loss

		return sample, true
	}

	inputGraph, err := abstraction.FromGrid(ex.Input)
	if err != nil {
		return reject()
	}

	// 1. Sample an abstraction.
	dist, err := trail.NextChoice(ctx)
	if err != nil {
		return reject()
	}
	absIdx := trail.Choose(dist)
	if err := trail.ObserveChoice(ctx, absIdx); err != nil {
		return reject()
	}
	absEntry := abstraction.Registry[absIdx]
	sample.Abstraction = absEntry.Name

	abstracted, err := absEntry.Apply(inputGraph)
	if err != nil {
		return reject()
	}

	// 2. Sample a filter; drop if none of the task's candidates apply.
	filters, err := candidate.EnumerateFilters(t, absEntry.Apply)
	if err != nil || len(filters) == 0 {
		return reject()
	}
	dist, err = trail.NextChoice(ctx)
	if err != nil {
		return reject()
	}
	filterIdx := trail.ChooseFrom(dist, candidateMask(len(filters), MaxCandidateWidth))
	if filterIdx < 0 {
		return reject()
	}
	if err := trail.ObserveChoice(ctx, filterIdx); err != nil {
		return reject()
	}
	chosenFilter := filters[filterIdx]
	sample.Filter = filterIdx

	// 3. Sample a transform; drop if none apply.
	transforms, err := candidate.EnumerateTransforms(t, absEntry.Apply)
	if err != nil || len(transforms) == 0 {
		return reject()
	}
	dist, err = trail.NextChoice(ctx)
	if err != nil {
		return reject()
	}
	transformIdx := trail.ChooseFrom(dist, candidateMask(len(transforms), MaxCandidateWidth))
	if transformIdx < 0 {
		return reject()
	}
	if err := trail.ObserveChoice(ctx, transformIdx); err != nil {
		return reject()
	}
	chosenTransform := transforms[transformIdx]
	sample.Transform = transformIdx

	// 4. Apply the transform to every node the filter matches,
	// resolving dynamic bindings per node.
	for _, node := range abstracted.Nodes() {
		if filter.Apply(chosenFilter, abstracted, node) {
			chosenTransform.Apply(abstracted, node)
		}
	}

	// 5. Undo the abstraction and compare pixel-wise.
	reconstructed, err := abstraction.UndoAbstraction(abstracted)
	success := err == nil && reconstructionMatches(reconstructed, ex.Output)
	sample.Reconstructed = success

	loss, _ := trail.Complete(ctx, success)
	sample.Loss = loss

	return sample, true
}

// Run executes iterations passes of the driver loop against tasks,
// sampling choices from g and randomness from rng.
func Run(ctx context.Context, tasks []*task.Task, g *guide.Guide, rng *rand.Rand, iterations int) Result {
	var result Result
	for i := 0; i < iterations; i++ {
		if sample, ok := runOnce(ctx, tasks, g, rng); ok {
			result.Samples = append(result.Samples, sample)
		}
	}

	return result
}
