package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ChainPulse/internal/domain/models"
	drepo "ChainPulse/internal/domain/repository"
	"ChainPulse/internal/services/charts"
	"ChainPulse/internal/services/regime"
	"ChainPulse/pkg/cache"
	"ChainPulse/pkg/logger"
)

const snapshotKey = "dashboard:snapshot"

// Snapshot is everything the dashboard renders for one load of the source.
type Snapshot struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Source      string          `json:"source"`
	Report      *models.Report  `json:"report"`
	Figures     []charts.Figure `json:"figures"`
	Rows        models.Series   `json:"rows"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// Dashboard assembles and caches dashboard snapshots.
type Dashboard struct {
	source  drepo.SeriesSource
	builder *ReportBuilder
	tables  regime.Tables
	cache   cache.Service
	ttl     time.Duration
	window  int
	metrics drepo.Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewDashboard creates a new Dashboard instance.
func NewDashboard(source drepo.SeriesSource, builder *ReportBuilder, tables regime.Tables, c cache.Service, ttl time.Duration, window int, metrics drepo.Metrics, log *logger.Logger) *Dashboard {
	return &Dashboard{
		source:  source,
		builder: builder,
		tables:  tables,
		cache:   c,
		ttl:     ttl,
		window:  window,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// Snapshot returns the cached snapshot or builds a new one.
func (d *Dashboard) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := d.cache.Get(ctx, snapshotKey, &snap)
	if err == nil {
		return &snap, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		d.log.Warn("dashboard cache read failed", logger.Error(err))
		d.metrics.RecordError("cache")
	}
	return d.rebuild(ctx)
}

// Refresh discards the cached snapshot and reloads the source.
func (d *Dashboard) Refresh(ctx context.Context) (*Snapshot, error) {
	if err := d.cache.Delete(ctx, snapshotKey); err != nil {
		d.log.Warn("dashboard cache invalidate failed", logger.Error(err))
		d.metrics.RecordError("cache")
	}
	return d.rebuild(ctx)
}

// Figures renders the charts of the current snapshot over window observations.
func (d *Dashboard) Figures(ctx context.Context, window int) ([]charts.Figure, error) {
	snap, err := d.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if window == d.window {
		return snap.Figures, nil
	}
	return charts.Build(snap.Rows, d.tables, window), nil
}

func (d *Dashboard) rebuild(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	series, err := d.source.LoadSeries(ctx)
	if err != nil {
		d.metrics.RecordError(models.ErrorKind(err))
		return nil, fmt.Errorf("load %s: %w", d.source.Name(), err)
	}

	rep, err := d.builder.FromSeries(series)
	if err != nil {
		return nil, err
	}

	var warnings []string
	for _, m := range models.TrackedMetrics() {
		for _, gap := range d.tables[m].Gaps() {
			warnings = append(warnings, fmt.Sprintf("%s: %s", m, gap))
		}
	}
	if len(warnings) > 0 {
		d.log.Warn("threshold tables are not contiguous", logger.Strings("warnings", warnings))
	}

	snap := &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: d.now().UTC(),
		Source:      d.source.Name(),
		Report:      rep,
		Figures:     charts.Build(series, d.tables, d.window),
		Rows:        series,
		Warnings:    warnings,
	}

	if err := d.cache.Set(ctx, snapshotKey, snap, d.ttl); err != nil {
		d.log.Warn("dashboard cache write failed", logger.Error(err))
		d.metrics.RecordError("cache")
	}
	d.metrics.RecordLatency("build_snapshot", time.Since(start).Seconds())
	d.log.Info("dashboard snapshot built",
		logger.String("snapshot_id", snap.ID),
		logger.Int("rows", len(series)),
		logger.Int("alerts", len(rep.Alerts)),
	)
	return snap, nil
}
