package regime

import "ChainPulse/internal/domain/models"

// DefaultTables returns the built-in threshold tables.
func DefaultTables() Tables {
	return Tables{
		models.NUPL: MustThresholdTable(
			Band{Label: models.Low, Min: 0, Max: 0.25},
			Band{Label: models.Neutral, Min: 0.25, Max: 0.75},
			Band{Label: models.High, Min: 0.75, Max: 1.0},
		),
		models.MVRVLTH: MustThresholdTable(
			Band{Label: models.Low, Min: 0, Max: 2},
			Band{Label: models.Neutral, Min: 2, Max: 7},
			Band{Label: models.High, Min: 7, Max: 10},
		),
		models.MVRVSTH: MustThresholdTable(
			Band{Label: models.Low, Min: 0, Max: 0.8},
			Band{Label: models.Neutral, Min: 0.8, Max: 1.5},
			Band{Label: models.High, Min: 1.5, Max: 3},
		),
		models.SOPRSTH: MustThresholdTable(
			Band{Label: models.Low, Min: 0, Max: 0.95},
			Band{Label: models.Neutral, Min: 0.95, Max: 1.1},
			Band{Label: models.High, Min: 1.1, Max: 2},
		),
	}
}

// DefaultMessages returns the built-in explanatory sentences.
func DefaultMessages() Messages {
	return Messages{
		models.NUPL: {
			models.Low:     "Market is in capitulation, showing significant unrealized losses.",
			models.Neutral: "Market shows balanced profit/loss ratio.",
			models.High:    "Market participants sitting on large unrealized profits, potential profit-taking ahead.",
		},
		models.MVRVLTH: {
			models.Low:     "Long-term holders are at a loss, historically a good accumulation zone.",
			models.Neutral: "Long-term holder positions show healthy valuation.",
			models.High:    "Long-term holders in significant profit, potential distribution zone.",
		},
		models.MVRVSTH: {
			models.Low:     "Short-term holders underwater, suggesting local bottom formation.",
			models.Neutral: "Short-term holder positions at reasonable valuations.",
			models.High:    "Short-term holders in heavy profit, increased sell pressure likely.",
		},
		models.SOPRSTH: {
			models.Low:     "Short-term holders selling at a loss, potential capitulation.",
			models.Neutral: "Normal profit-taking behavior from short-term holders.",
			models.High:    "Short-term holders taking significant profits, potential local top.",
		},
	}
}
