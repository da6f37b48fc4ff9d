package guide

import "context"

// UniformBackbone is a trivial Backbone whose every distribution is
// uniform over the current choice point's width and whose training
// step is a no-op returning zero loss. Useful for property tests and
// as a baseline before a learned network is wired in.
type UniformBackbone struct {
	widths []int
}

// NewUniformBackbone returns an empty UniformBackbone ready for
// Builder.Build.
func NewUniformBackbone() *UniformBackbone {
	return &UniformBackbone{}
}

// AddChoiceToNet records numChoices for the choice point at this
// registration order.
func (b *UniformBackbone) AddChoiceToNet(numChoices int, _ string) {
	b.widths = append(b.widths, numChoices)
}

// BuildNetwork returns the built uniform network.
func (b *UniformBackbone) BuildNetwork() Network {
	return &uniformNetwork{widths: append([]int{}, b.widths...)}
}

type uniformNetwork struct {
	widths []int
}

func (n *uniformNetwork) CreateTrail(_ context.Context, _, _ Pixels) NetTrail {
	return &uniformTrail{widths: n.widths}
}

type uniformTrail struct {
	widths []int
}

func (t *uniformTrail) NextChoice(_ context.Context, cursor, numChoices int) ([]float64, error) {
	if numChoices <= 0 {
		return nil, nil
	}

	dist := make([]float64, numChoices)
	p := 1 / float64(numChoices)
	for i := range dist {
		dist[i] = p
	}

	return dist, nil
}

func (t *uniformTrail) ObserveChoice(_ context.Context, _, _ int) error {
	return nil
}

func (t *uniformTrail) CompleteTrail(_ context.Context, _ bool) (float64, error) {
	return 0, nil
}
