package guide

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggingBackbone wraps a Backbone, logging every choice-point
// registration, sample, and trail completion at debug level.
type LoggingBackbone struct {
	inner  Backbone
	logger zerolog.Logger
}

// NewLoggingBackbone decorates inner with structured logging through
// logger.
func NewLoggingBackbone(inner Backbone, logger zerolog.Logger) *LoggingBackbone {
	return &LoggingBackbone{inner: inner, logger: logger}
}

func (b *LoggingBackbone) AddChoiceToNet(numChoices int, name string) {
	b.logger.Debug().Int("num_choices", numChoices).Str("name", name).Msg("registering choice point")
	b.inner.AddChoiceToNet(numChoices, name)
}

func (b *LoggingBackbone) BuildNetwork() Network {
	b.logger.Debug().Msg("building network")

	return &loggingNetwork{inner: b.inner.BuildNetwork(), logger: b.logger}
}

type loggingNetwork struct {
	inner  Network
	logger zerolog.Logger
}

func (n *loggingNetwork) CreateTrail(ctx context.Context, input, output Pixels) NetTrail {
	n.logger.Debug().
		Int("input_w", input.Width).Int("input_h", input.Height).
		Int("output_w", output.Width).Int("output_h", output.Height).
		Msg("creating trail")

	return &loggingTrail{inner: n.inner.CreateTrail(ctx, input, output), logger: n.logger}
}

type loggingTrail struct {
	inner  NetTrail
	logger zerolog.Logger
}

func (t *loggingTrail) NextChoice(ctx context.Context, cursor, numChoices int) ([]float64, error) {
	dist, err := t.inner.NextChoice(ctx, cursor, numChoices)
	if err != nil {
		t.logger.Warn().Err(err).Int("cursor", cursor).Msg("next choice failed")
	}

	return dist, err
}

func (t *loggingTrail) ObserveChoice(ctx context.Context, cursor, choice int) error {
	t.logger.Debug().Int("cursor", cursor).Int("choice", choice).Msg("observing choice")

	return t.inner.ObserveChoice(ctx, cursor, choice)
}

func (t *loggingTrail) CompleteTrail(ctx context.Context, success bool) (float64, error) {
	loss, err := t.inner.CompleteTrail(ctx, success)
	if err != nil {
		t.logger.Warn().Err(err).Msg("complete trail failed")

		return loss, err
	}
	t.logger.Debug().Bool("success", success).Float64("loss", loss).Msg("trail complete")

	return loss, nil
}
