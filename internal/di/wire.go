//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"ChainPulse/internal/services/regime"
	"ChainPulse/internal/usecase"
	"ChainPulse/pkg/config"
	"ChainPulse/pkg/server"
)

var coreSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	ProvideMetrics,
	ProvideRegimes,
	wire.FieldsOf(new(regime.Set), "Tables", "Messages"),
	ProvideSeriesSource,
	usecase.NewReportBuilder,
)

// InitializeNotifyJob wires the notify command.
func InitializeNotifyJob(ctx context.Context, cfg *config.Config) (*server.NotifyJob, func(), error) {
	wire.Build(
		coreSet,
		ProvideNotifier,
		ProvideDispatcher,
		ProvideNotifyJob,
	)
	return nil, nil, nil
}

// InitializeDashboard wires the dashboard command.
func InitializeDashboard(ctx context.Context, cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		coreSet,
		ProvideCache,
		ProvideDashboard,
		ProvideRefreshLimiter,
		ProvideDashboardHandler,
		ProvideHTTPServer,
		ProvideApp,
	)
	return nil, nil, nil
}

// InitializeReportBuilder wires the report command.
func InitializeReportBuilder(ctx context.Context, cfg *config.Config) (*usecase.ReportBuilder, func(), error) {
	wire.Build(coreSet)
	return nil, nil, nil
}
