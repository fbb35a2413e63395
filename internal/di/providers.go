package di

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ChainPulse/internal/domain/repository"
	"ChainPulse/internal/handler/api"
	internalrepo "ChainPulse/internal/repository"
	"ChainPulse/internal/service/ratelimit"
	"ChainPulse/internal/services/regime"
	"ChainPulse/internal/usecase"
	"ChainPulse/pkg/cache"
	pkgch "ChainPulse/pkg/clickhouse"
	"ChainPulse/pkg/config"
	xhttp "ChainPulse/pkg/http"
	pkgkafka "ChainPulse/pkg/kafka"
	"ChainPulse/pkg/logger"
	"ChainPulse/pkg/metrics"
	"ChainPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(logger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates a private Prometheus registry with Go runtime collectors.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg prometheus.Registerer) repository.Metrics {
	return metrics.New(reg)
}

// ProvideRegimes builds threshold and message tables from defaults and YAML
// overrides. The injectors read both halves through wire.FieldsOf.
func ProvideRegimes(cfg *config.Config) (regime.Set, error) {
	return regime.LoadSet(cfg.Regimes)
}

// ProvideSeriesSource opens the configured metric table.
func ProvideSeriesSource(ctx context.Context, cfg *config.Config) (repository.SeriesSource, func(), error) {
	switch cfg.Source.Type {
	case "clickhouse":
		client, err := pkgch.NewClient(ctx,
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
			pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("clickhouse client: %w", err)
		}
		src, err := internalrepo.NewClickHouseSource(client.DB(), cfg.Source.Table)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return src, func() { _ = client.Close() }, nil
	default:
		return internalrepo.NewCSVSource(cfg.Source.Path), func() {}, nil
	}
}

// ProvideNotifier creates the notifier of the configured channel. It returns
// nil in dry-run mode so no credentials are needed.
func ProvideNotifier(cfg *config.Config, reg prometheus.Registerer) (repository.Notifier, func(), error) {
	if err := cfg.ValidateNotify(); err != nil {
		return nil, nil, err
	}
	if cfg.Notify.DryRun {
		return nil, func() {}, nil
	}

	switch cfg.Notify.Channel {
	case "kafka":
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(*cfg.Kafka.RequiredAcks),
			pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.WriteTimeout),
			pkgkafka.WithRegisterer(reg),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaNotifier(producer), func() { _ = producer.Close() }, nil
	default:
		client := xhttp.NewClient(xhttp.WithTimeout(cfg.Notify.Timeout))
		n := internalrepo.NewTelegramNotifier(client, cfg.Notify.Telegram.BaseURL, cfg.Notify.Telegram.BotToken, cfg.Notify.Telegram.ParseMode)
		return n, func() {}, nil
	}
}

// ProvideDispatcher creates the notify use case.
func ProvideDispatcher(cfg *config.Config, builder *usecase.ReportBuilder, notifier repository.Notifier, m repository.Metrics, log *logger.Logger) *usecase.Dispatcher {
	return usecase.NewDispatcher(builder, notifier, cfg.Destination(), m, log,
		usecase.WithDryRun(cfg.Notify.DryRun),
		usecase.WithDeliveryTimeout(cfg.Notify.Timeout),
	)
}

// ProvideNotifyJob wraps the dispatcher with run logging and metrics push.
func ProvideNotifyJob(cfg *config.Config, d *usecase.Dispatcher, g prometheus.Gatherer, log *logger.Logger) *server.NotifyJob {
	return server.NewNotifyJob(cfg, d, g, log)
}

// ProvideCache creates the dashboard snapshot cache.
func ProvideCache(ctx context.Context, cfg *config.Config) (cache.Service, func(), error) {
	if cfg.Dashboard.Cache == "redis" {
		rc, err := cache.NewRedisCache(ctx,
			cache.WithRedisAddr(cfg.Redis.Addr),
			cache.WithRedisPassword(cfg.Redis.Password),
			cache.WithRedisDB(cfg.Redis.DB),
			cache.WithRedisPrefix(cfg.Redis.Prefix),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, func() { _ = rc.Close() }, nil
	}
	mc := cache.NewMemoryCache()
	return mc, func() { _ = mc.Close() }, nil
}

// ProvideDashboard creates the dashboard use case.
func ProvideDashboard(
	cfg *config.Config,
	src repository.SeriesSource,
	builder *usecase.ReportBuilder,
	tables regime.Tables,
	c cache.Service,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.Dashboard {
	return usecase.NewDashboard(src, builder, tables, c, cfg.Dashboard.CacheTTL, cfg.Dashboard.Window, m, log)
}

// ProvideRefreshLimiter limits POST /api/refresh per client.
func ProvideRefreshLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Dashboard.RefreshEvery, cfg.Dashboard.RefreshBurst, 10*cfg.Dashboard.RefreshEvery)
}

// ProvideDashboardHandler creates the dashboard HTTP handler.
func ProvideDashboardHandler(cfg *config.Config, log *logger.Logger, dash *usecase.Dashboard, limiter *ratelimit.Limiter) *api.DashboardEchoHandler {
	return api.NewDashboardEchoHandler(log, dash, limiter, cfg.Dashboard.Window, cfg.Dashboard.LiveInterval)
}

// ProvideHTTPServer creates the Echo server for the dashboard.
func ProvideHTTPServer(cfg *config.Config, h *api.DashboardEchoHandler, log *logger.Logger, reg *prometheus.Registry) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h, log,
		xhttp.WithPort(cfg.Dashboard.Port),
		xhttp.WithTimeouts(cfg.Dashboard.ReadTimeout, cfg.Dashboard.WriteTimeout, cfg.Dashboard.ShutdownTimeout),
		xhttp.WithMetrics(metricsPath, reg, reg),
	)
}

// ProvideApp creates the dashboard application.
func ProvideApp(cfg *config.Config, dash *usecase.Dashboard, srv *xhttp.Server, log *logger.Logger) *server.App {
	return server.New(cfg, dash, srv, log)
}
