package models

// Metric is the column name of an on-chain valuation metric.
type Metric string

const (
	NUPL        Metric = "NUPL"
	MVRVLTH     Metric = "MVRV_LTH"
	MVRVSTH     Metric = "MVRV_STH"
	SOPRSTH     Metric = "SOPR_STH"
	RealizedCap Metric = "RealizedCap"
)

// DateField is the column holding the observation date.
const DateField = "date"

// DisplayName is the name used in reports and alerts.
func (m Metric) DisplayName() string {
	switch m {
	case MVRVLTH:
		return "LTH-MVRV"
	case MVRVSTH:
		return "STH-MVRV"
	case SOPRSTH:
		return "STH-SOPR"
	case RealizedCap:
		return "Realized Cap"
	default:
		return string(m)
	}
}

// ChartTitle is the title of the metric's dashboard chart.
func (m Metric) ChartTitle() string {
	switch m {
	case MVRVLTH:
		return "MVRV Long Term Holders"
	case MVRVSTH:
		return "MVRV Short Term Holders"
	case SOPRSTH:
		return "SOPR Short Term Holders"
	case RealizedCap:
		return "Realized Cap (in billions)"
	default:
		return string(m)
	}
}

// TrackedMetrics returns the classified metrics in report order.
func TrackedMetrics() []Metric {
	return []Metric{NUPL, MVRVLTH, MVRVSTH, SOPRSTH}
}

// RequiredFields returns every column a source must provide.
func RequiredFields() []string {
	return []string{DateField, string(NUPL), string(MVRVLTH), string(MVRVSTH), string(SOPRSTH), string(RealizedCap)}
}

// Label is a qualitative regime bucket.
type Label string

const (
	Low     Label = "low"
	Neutral Label = "neutral"
	High    Label = "high"
)

// Labels returns all regime labels from low to high.
func Labels() []Label {
	return []Label{Low, Neutral, High}
}

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	switch l {
	case Low, Neutral, High:
		return true
	default:
		return false
	}
}

// Classifications maps each tracked metric to its regime label.
type Classifications map[Metric]Label
