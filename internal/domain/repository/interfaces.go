package repository

import (
	"context"

	"ChainPulse/internal/domain/models"
)

// SeriesSource provides the metric table, oldest observation first.
type SeriesSource interface {
	LoadSeries(ctx context.Context) (models.Series, error)
	// LoadLatest returns at most the n most recent observations.
	LoadLatest(ctx context.Context, n int) (models.Series, error)
	Name() string
}

// Notifier delivers a text payload to one destination, at most once per call.
type Notifier interface {
	Deliver(ctx context.Context, destination, text string) error
	Channel() string
}

type Metrics interface {
	RecordObservation(obs models.Observation)
	RecordClassifications(cls models.Classifications)
	RecordAlert(metric models.Metric)
	RecordDelivery(channel string, err error)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
