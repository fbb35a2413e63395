package regime

import (
	"fmt"

	"ChainPulse/internal/domain/models"
	"ChainPulse/pkg/config"
)

// Set is the threshold and message configuration of every tracked metric.
type Set struct {
	Tables   Tables
	Messages Messages
}

// LoadSet is FromConfig returning both tables in one value.
func LoadSet(overrides map[string]config.RegimeConfig) (Set, error) {
	tables, messages, err := FromConfig(overrides)
	if err != nil {
		return Set{}, err
	}
	return Set{Tables: tables, Messages: messages}, nil
}

// FromConfig builds tables and messages from YAML overrides on top of the
// defaults. A metric without bands keeps its default table; messages are
// merged label by label.
func FromConfig(overrides map[string]config.RegimeConfig) (Tables, Messages, error) {
	tables := DefaultTables()
	messages := DefaultMessages()

	tracked := make(map[models.Metric]bool)
	for _, m := range models.TrackedMetrics() {
		tracked[m] = true
	}

	for name, rc := range overrides {
		metric := models.Metric(name)
		if !tracked[metric] {
			return nil, nil, fmt.Errorf("regimes: unknown metric %q", name)
		}

		if len(rc.Bands) > 0 {
			bands := make([]Band, 0, len(rc.Bands))
			for _, b := range rc.Bands {
				bands = append(bands, Band{Label: models.Label(b.Label), Min: b.Min, Max: b.Max})
			}
			tbl, err := NewThresholdTable(bands...)
			if err != nil {
				return nil, nil, fmt.Errorf("regimes %s: %w", name, err)
			}
			tables[metric] = tbl
		}

		if len(rc.Messages) > 0 {
			merged := make(map[models.Label]string)
			for l, s := range messages[metric] {
				merged[l] = s
			}
			for l, s := range rc.Messages {
				merged[models.Label(l)] = s
			}
			mt, err := NewMessageTable(merged)
			if err != nil {
				return nil, nil, fmt.Errorf("regimes %s messages: %w", name, err)
			}
			messages[metric] = mt
		}
	}

	return tables, messages, nil
}
