package usecase

import (
	"context"
	"sync"

	"ChainPulse/internal/domain/models"
)

type fakeSource struct {
	series models.Series
	err    error
	loads  int
}

func (s *fakeSource) LoadSeries(context.Context) (models.Series, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.series, nil
}

func (s *fakeSource) LoadLatest(ctx context.Context, n int) (models.Series, error) {
	series, err := s.LoadSeries(ctx)
	if err != nil {
		return nil, err
	}
	return series.Tail(n), nil
}

func (s *fakeSource) Name() string { return "fake" }

type fakeNotifier struct {
	calls       int
	destination string
	text        string
	err         error
}

func (n *fakeNotifier) Deliver(_ context.Context, destination, text string) error {
	n.calls++
	n.destination = destination
	n.text = text
	if n.err != nil {
		return &models.DeliveryError{Channel: n.Channel(), Destination: destination, Err: n.err}
	}
	return nil
}

func (n *fakeNotifier) Channel() string { return "fake" }

type fakeMetrics struct {
	mu         sync.Mutex
	alerts     []models.Metric
	deliveries map[string]int
	errors     []string
	cls        models.Classifications
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{deliveries: make(map[string]int)}
}

func (m *fakeMetrics) RecordObservation(models.Observation) {}

func (m *fakeMetrics) RecordClassifications(cls models.Classifications) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cls = cls
}

func (m *fakeMetrics) RecordAlert(metric models.Metric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, metric)
}

func (m *fakeMetrics) RecordDelivery(channel string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := channel + ":ok"
	if err != nil {
		key = channel + ":error"
	}
	m.deliveries[key]++
}

func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, kind)
}

func (m *fakeMetrics) RecordLatency(string, float64) {}

// twoDays has NUPL moving from neutral to high and SOPR from neutral to low.
func twoDays() models.Series {
	return models.Series{
		{Date: "2024-03-04", NUPL: 0.60, MVRVLTH: 3.0, MVRVSTH: 1.2, SOPRSTH: 1.00, RealizedCap: 5.1e11},
		{Date: "2024-03-05", NUPL: 0.80, MVRVLTH: 3.1, MVRVSTH: 1.3, SOPRSTH: 0.90, RealizedCap: 5.2e11},
	}
}
