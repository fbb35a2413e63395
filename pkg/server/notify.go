package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/usecase"
	"ChainPulse/pkg/config"
	applogger "ChainPulse/pkg/logger"
	"ChainPulse/pkg/metrics"
)

// NotifyJob is one run of the notifier: build, deliver once, push metrics.
type NotifyJob struct {
	cfg        *config.Config
	dispatcher *usecase.Dispatcher
	gatherer   prometheus.Gatherer
	log        *applogger.Logger
}

// NewNotifyJob creates a new NotifyJob instance.
func NewNotifyJob(cfg *config.Config, dispatcher *usecase.Dispatcher, gatherer prometheus.Gatherer, log *applogger.Logger) *NotifyJob {
	return &NotifyJob{cfg: cfg, dispatcher: dispatcher, gatherer: gatherer, log: log}
}

// Run returns the report whenever one was built, including when delivery failed.
func (j *NotifyJob) Run(ctx context.Context) (*models.Report, error) {
	runID := uuid.NewString()
	log := j.log.With(applogger.String("run_id", runID))
	start := time.Now()

	rep, err := j.dispatcher.Dispatch(ctx)
	if err != nil {
		log.Error("notify run failed", applogger.Error(err), applogger.String("kind", models.ErrorKind(err)))
	} else {
		log.Info("notify run finished", applogger.Duration("took", time.Since(start)))
	}

	if j.cfg.Metrics.Enabled && j.cfg.Metrics.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if perr := metrics.Push(pushCtx, j.cfg.Metrics.PushgatewayURL, j.cfg.Metrics.Job, j.gatherer,
			map[string]string{"channel": j.cfg.Notify.Channel}); perr != nil {
			log.Warn("metrics push failed", applogger.Error(perr))
		}
	}

	return rep, err
}
