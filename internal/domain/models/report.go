package models

import "fmt"

// AlertNotice records a regime transition of one metric.
type AlertNotice struct {
	Metric   Metric `json:"metric"`
	Previous Label  `json:"previous"`
	Current  Label  `json:"current"`
}

func (a AlertNotice) String() string {
	return fmt.Sprintf("%s status changed from %s to %s", a.Metric.DisplayName(), a.Previous, a.Current)
}

// Report is the outcome of one report-generation cycle.
type Report struct {
	Latest   Observation     `json:"latest"`
	Previous Observation     `json:"previous"`
	Current  Classifications `json:"current"`
	Prior    Classifications `json:"prior"`
	Alerts   []AlertNotice   `json:"alerts"`
	Text     string          `json:"text"`
}
