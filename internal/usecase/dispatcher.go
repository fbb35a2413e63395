package usecase

import (
	"context"
	"time"

	"ChainPulse/internal/domain/models"
	drepo "ChainPulse/internal/domain/repository"
	"ChainPulse/pkg/logger"
)

// Dispatcher builds one report and delivers it once.
type Dispatcher struct {
	builder     *ReportBuilder
	notifier    drepo.Notifier
	destination string
	timeout     time.Duration
	dryRun      bool
	metrics     drepo.Metrics
	log         *logger.Logger
}

// DispatcherOption configures Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDryRun skips delivery; the report is still built and returned.
func WithDryRun(dry bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.dryRun = dry
	}
}

// WithDeliveryTimeout bounds the delivery call.
func WithDeliveryTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// NewDispatcher creates a new Dispatcher instance. notifier may be nil in dry-run mode.
func NewDispatcher(builder *ReportBuilder, notifier drepo.Notifier, destination string, metrics drepo.Metrics, log *logger.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		builder:     builder,
		notifier:    notifier,
		destination: destination,
		metrics:     metrics,
		log:         log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch returns the built report even when delivery fails; the error is then
// a *models.DeliveryError.
func (d *Dispatcher) Dispatch(ctx context.Context) (*models.Report, error) {
	rep, err := d.builder.Build(ctx)
	if err != nil {
		return nil, err
	}

	log := d.log.With(
		logger.String("date", rep.Latest.Date),
		logger.Int("alerts", len(rep.Alerts)),
		logger.Any("regimes", rep.Current),
	)

	if d.dryRun || d.notifier == nil {
		log.Info("dry run, delivery skipped")
		return rep, nil
	}

	deliverCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		deliverCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	err = d.notifier.Deliver(deliverCtx, d.destination, rep.Text)
	d.metrics.RecordDelivery(d.notifier.Channel(), err)
	d.metrics.RecordLatency("deliver", time.Since(start).Seconds())
	if err != nil {
		d.metrics.RecordError(models.ErrorKind(err))
		log.Error("delivery failed", logger.String("channel", d.notifier.Channel()), logger.Error(err))
		return rep, err
	}

	log.Info("report delivered",
		logger.String("channel", d.notifier.Channel()),
		logger.Duration("took", time.Since(start)),
	)
	return rep, nil
}
