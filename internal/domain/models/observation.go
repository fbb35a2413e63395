package models

// Observation is one dated row of the metric table.
type Observation struct {
	Date        string  `json:"date"`
	NUPL        float64 `json:"NUPL"`
	MVRVLTH     float64 `json:"MVRV_LTH"`
	MVRVSTH     float64 `json:"MVRV_STH"`
	SOPRSTH     float64 `json:"SOPR_STH"`
	RealizedCap float64 `json:"RealizedCap"`
}

// Value returns the value of metric m. Unknown metrics yield 0.
func (o Observation) Value(m Metric) float64 {
	switch m {
	case NUPL:
		return o.NUPL
	case MVRVLTH:
		return o.MVRVLTH
	case MVRVSTH:
		return o.MVRVSTH
	case SOPRSTH:
		return o.SOPRSTH
	case RealizedCap:
		return o.RealizedCap
	default:
		return 0
	}
}

// Set assigns v to metric m.
func (o *Observation) Set(m Metric, v float64) {
	switch m {
	case NUPL:
		o.NUPL = v
	case MVRVLTH:
		o.MVRVLTH = v
	case MVRVSTH:
		o.MVRVSTH = v
	case SOPRSTH:
		o.SOPRSTH = v
	case RealizedCap:
		o.RealizedCap = v
	}
}

// Series is a chronologically ascending list of observations, most recent last.
type Series []Observation

// Tail returns the last n observations (all of them when n <= 0 or n > len).
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// LatestPair returns the two most recent observations.
func (s Series) LatestPair() (latest, previous Observation, err error) {
	if len(s) < 2 {
		return Observation{}, Observation{}, &InsufficientDataError{Rows: len(s)}
	}
	return s[len(s)-1], s[len(s)-2], nil
}
