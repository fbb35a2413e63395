package regime

import "ChainPulse/internal/domain/models"

// DetectChanges emits one notice per tracked metric whose label differs between
// previous and current, in report order.
func DetectChanges(current, previous models.Classifications) []models.AlertNotice {
	var alerts []models.AlertNotice
	for _, m := range models.TrackedMetrics() {
		cur, okCur := current[m]
		prev, okPrev := previous[m]
		if !okCur || !okPrev || cur == prev {
			continue
		}
		alerts = append(alerts, models.AlertNotice{Metric: m, Previous: prev, Current: cur})
	}
	return alerts
}
