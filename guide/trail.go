package guide

import (
	"context"
	"errors"
	"math/rand"
)

// ErrTrailExhausted is returned by NextChoice/ObserveChoice once the
// cursor has moved past the guide's last choice point.
var ErrTrailExhausted = errors.New("guide: trail exhausted")

// ErrNothingToBacktrack is returned by Backtrack on a trail at its
// first choice point.
var ErrNothingToBacktrack = errors.New("guide: nothing to backtrack")

// Trail is a single-threaded, single-writer path through a Guide's
// choice points for one (input, output) sample.
type Trail struct {
	guide    *Guide
	netTrail NetTrail
	rng      *rand.Rand
	cursor   int
}

func (t *Trail) currentPoint() (ChoicePoint, bool) {
	if t.cursor < 0 || t.cursor >= len(t.guide.points) {
		return ChoicePoint{}, false
	}

	return t.guide.points[t.cursor], true
}

// NextChoice asks the backbone for the current choice point's
// distribution and mixes in epsilon uniform exploration mass. It does
// not advance the cursor.
func (t *Trail) NextChoice(ctx context.Context) (Categorical, error) {
	point, ok := t.currentPoint()
	if !ok {
		return nil, ErrTrailExhausted
	}

	raw, err := t.netTrail.NextChoice(ctx, t.cursor, point.NumChoices)
	if err != nil {
		return nil, err
	}

	return mixUniform(raw, t.guide.epsilon), nil
}

// Choose samples dist by inverse-CDF using the trail's rng.
func (t *Trail) Choose(dist Categorical) int {
	return choose(t.rng, dist)
}

// ChooseFrom samples dist restricted to the indices valid marks true.
func (t *Trail) ChooseFrom(dist Categorical, valid []bool) int {
	return chooseFrom(t.rng, dist, valid)
}

// ObserveChoice records choice (or -1 to marginalise) at the current
// choice point, notifies the backbone, and advances the cursor to the
// next choice point. The caller must call this for every choice point
// in order, even ones it does not use, passing -1 for those.
func (t *Trail) ObserveChoice(ctx context.Context, choice int) error {
	if _, ok := t.currentPoint(); !ok {
		return ErrTrailExhausted
	}

	if err := t.netTrail.ObserveChoice(ctx, t.cursor, choice); err != nil {
		return err
	}
	t.cursor++

	return nil
}

// Backtrack rewinds the cursor by one choice point. The caller is
// expected to re-sample and re-observe that slot. The backbone's
// interface (see Backbone/NetTrail) has no explicit "unobserve"
// operation, so the backbone sees only the eventual re-observation at
// the same cursor position.
func (t *Trail) Backtrack() error {
	if t.cursor <= 0 {
		return ErrNothingToBacktrack
	}
	t.cursor--

	return nil
}

// Cursor reports the index of the choice point the trail is currently
// positioned at.
func (t *Trail) Cursor() int { return t.cursor }

// Done reports whether every choice point has been observed.
func (t *Trail) Done() bool { return t.cursor >= len(t.guide.points) }

// Complete terminates the trail: if success, the backbone runs one
// training step and returns its loss; otherwise the returned loss is
// meaningless.
func (t *Trail) Complete(ctx context.Context, success bool) (float64, error) {
	return t.netTrail.CompleteTrail(ctx, success)
}
