package guide

// colorChoices is the fixed width of a KindColor choice point: the ten
// palette literals.
const colorChoices = 10

// Builder accumulates choice points before a Guide is built. Calls
// must happen in the exact order DSL operators will later sample
// them, since Build registers each point with the backbone in that
// same order.
type Builder struct {
	points []ChoicePoint
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddChoice registers a plain n-way categorical choice point.
func (b *Builder) AddChoice(numChoices int, name string) *Builder {
	b.points = append(b.points, ChoicePoint{Name: name, Kind: KindCategorical, NumChoices: numChoices})

	return b
}

// AddColor registers a 10-way colour choice point.
func (b *Builder) AddColor(name string) *Builder {
	b.points = append(b.points, ChoicePoint{Name: name, Kind: KindColor, NumChoices: colorChoices})

	return b
}

// AddSpatial registers a choice point whose width is determined by
// repr.
func (b *Builder) AddSpatial(repr SpatialRepr, name string) *Builder {
	b.points = append(b.points, ChoicePoint{Name: name, Kind: KindSpatial, Repr: repr, NumChoices: repr.NumChoices()})

	return b
}

// Build registers every accumulated choice point with backbone, in
// order, then consumes the builder into a Guide wrapping the built
// Network.
func (b *Builder) Build(backbone Backbone, epsilon float64) *Guide {
	for _, p := range b.points {
		backbone.AddChoiceToNet(p.NumChoices, p.Name)
	}

	return &Guide{
		points:  append([]ChoicePoint{}, b.points...),
		network: backbone.BuildNetwork(),
		epsilon: epsilon,
	}
}
