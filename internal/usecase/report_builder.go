package usecase

import (
	"context"
	"fmt"
	"time"

	"ChainPulse/internal/domain/models"
	drepo "ChainPulse/internal/domain/repository"
	"ChainPulse/internal/services/regime"
	"ChainPulse/internal/services/report"
)

// LoadLatestPair reads source and returns its two most recent observations.
func LoadLatestPair(ctx context.Context, source drepo.SeriesSource) (latest, previous models.Observation, err error) {
	series, err := source.LoadLatest(ctx, 2)
	if err != nil {
		return models.Observation{}, models.Observation{}, fmt.Errorf("load %s: %w", source.Name(), err)
	}
	return series.LatestPair()
}

// ReportBuilder runs one classify, detect and format cycle.
type ReportBuilder struct {
	source   drepo.SeriesSource
	tables   regime.Tables
	messages regime.Messages
	metrics  drepo.Metrics
}

// NewReportBuilder creates a new ReportBuilder instance.
func NewReportBuilder(source drepo.SeriesSource, tables regime.Tables, messages regime.Messages, metrics drepo.Metrics) *ReportBuilder {
	return &ReportBuilder{source: source, tables: tables, messages: messages, metrics: metrics}
}

// Build loads the latest pair from the source and renders the report.
func (b *ReportBuilder) Build(ctx context.Context) (*models.Report, error) {
	start := time.Now()
	latest, previous, err := LoadLatestPair(ctx, b.source)
	if err != nil {
		b.metrics.RecordError(models.ErrorKind(err))
		return nil, err
	}
	rep := b.compose(latest, previous)
	b.metrics.RecordLatency("build_report", time.Since(start).Seconds())
	return rep, nil
}

// FromSeries renders the report for the last two rows of an already loaded series.
func (b *ReportBuilder) FromSeries(series models.Series) (*models.Report, error) {
	latest, previous, err := series.LatestPair()
	if err != nil {
		b.metrics.RecordError(models.ErrorKind(err))
		return nil, err
	}
	return b.compose(latest, previous), nil
}

func (b *ReportBuilder) compose(latest, previous models.Observation) *models.Report {
	current := regime.ClassifyObservation(latest, b.tables)
	prior := regime.ClassifyObservation(previous, b.tables)
	alerts := regime.DetectChanges(current, prior)

	b.metrics.RecordObservation(latest)
	b.metrics.RecordClassifications(current)
	for _, a := range alerts {
		b.metrics.RecordAlert(a.Metric)
	}

	return &models.Report{
		Latest:   latest,
		Previous: previous,
		Current:  current,
		Prior:    prior,
		Alerts:   alerts,
		Text:     report.Format(latest, current, alerts, b.messages),
	}
}
