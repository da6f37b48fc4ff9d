package guide

import "context"

// Pixels is a row-major buffer of palette colour indices, the wire
// shape a backbone receives for a trail's seed input/output grids.
type Pixels struct {
	Width   int
	Height  int
	Indices []int8
}

// Backbone is the builder-time handle onto the neural network: one
// AddChoiceToNet call per registered choice point, in order, then a
// single BuildNetwork call that consumes the builder.
type Backbone interface {
	AddChoiceToNet(numChoices int, name string)
	BuildNetwork() Network
}

// Network is the built backbone, capable of seeding a trail against an
// (input, output) pixel pair.
type Network interface {
	CreateTrail(ctx context.Context, input, output Pixels) NetTrail
}

// NetTrail is one backbone-side path through the choice points. Its
// three calls are synchronous and may block for unbounded time; ctx
// cancellation is the caller's only recourse.
type NetTrail interface {
	// NextChoice fills a probability vector of length numChoices for
	// the current cursor, without advancing it.
	NextChoice(ctx context.Context, cursor, numChoices int) ([]float64, error)

	// ObserveChoice records choice (or -1 to marginalise) at cursor and
	// advances the backbone's internal state.
	ObserveChoice(ctx context.Context, cursor, choice int) error

	// CompleteTrail runs one optimiser step when success is true and
	// releases the trail's backbone-side state. The returned loss is
	// meaningless when success is false.
	CompleteTrail(ctx context.Context, success bool) (float64, error)
}
