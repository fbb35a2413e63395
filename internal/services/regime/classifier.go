package regime

import "ChainPulse/internal/domain/models"

// Classify returns the label of the first band, in table order, containing value.
// When none matches the result saturates: high if value is at or above the Max of
// the last band checked, low otherwise. NaN and an empty table yield low.
func Classify(value float64, table ThresholdTable) models.Label {
	if len(table.bands) == 0 {
		return models.Low
	}
	for _, b := range table.bands {
		if b.Contains(value) {
			return b.Label
		}
	}
	// Saturation hides gaps in misconfigured tables; Gaps reports them.
	if value >= table.bands[len(table.bands)-1].Max {
		return models.High
	}
	return models.Low
}

// ClassifyObservation classifies every tracked metric of obs.
func ClassifyObservation(obs models.Observation, tables Tables) models.Classifications {
	out := make(models.Classifications, len(tables))
	for _, m := range models.TrackedMetrics() {
		out[m] = Classify(obs.Value(m), tables[m])
	}
	return out
}
