package guide

import (
	"context"
	"math/rand"
)

// Guide is the fixed, ordered description of a DSL program's choice
// points plus the backbone network answering per-step distributions.
type Guide struct {
	points  []ChoicePoint
	network Network
	epsilon float64
}

// Points returns the guide's registered choice points, in add order.
func (g *Guide) Points() []ChoicePoint {
	return append([]ChoicePoint{}, g.points...)
}

// NewTrail seeds a fresh trail against the (input, output) pixel pair,
// with its cursor at the first choice point.
func (g *Guide) NewTrail(ctx context.Context, input, output Pixels, rng *rand.Rand) *Trail {
	return &Trail{
		guide:    g,
		netTrail: g.network.CreateTrail(ctx, input, output),
		rng:      rng,
	}
}
