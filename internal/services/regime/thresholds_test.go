package regime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
)

func TestNewThresholdTable_Rejects(t *testing.T) {
	cases := map[string][]Band{
		"empty":         nil,
		"unknown label": {{Label: "extreme", Min: 0, Max: 1}},
		"duplicate":     {{Label: models.Low, Min: 0, Max: 1}, {Label: models.Low, Min: 1, Max: 2}},
		"inverted":      {{Label: models.Low, Min: 2, Max: 1}},
		"degenerate":    {{Label: models.Low, Min: 1, Max: 1}},
	}
	for name, bands := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewThresholdTable(bands...)
			assert.Error(t, err)
		})
	}
}

func TestThresholdTable_BandsIsACopy(t *testing.T) {
	tbl := DefaultTables()[models.NUPL]
	bands := tbl.Bands()
	bands[0].Max = 100

	assert.Equal(t, models.Low, Classify(0.5, ThresholdTable{bands: bands}))
	assert.Equal(t, models.Neutral, Classify(0.5, tbl))
}

func TestThresholdTable_GapsReportsOverlap(t *testing.T) {
	tbl, err := NewThresholdTable(
		Band{Label: models.Low, Min: 0, Max: 1.5},
		Band{Label: models.Neutral, Min: 1, Max: 2},
	)
	require.NoError(t, err)

	gaps := tbl.Gaps()
	require.Len(t, gaps, 1)
	assert.Contains(t, gaps[0], "overlap")
}

func TestNewMessageTable(t *testing.T) {
	_, err := NewMessageTable(map[models.Label]string{models.Low: "a", models.Neutral: "b"})
	assert.Error(t, err)

	mt, err := NewMessageTable(map[models.Label]string{models.Low: "a", models.Neutral: "b", models.High: "c"})
	require.NoError(t, err)
	assert.Equal(t, "c", mt[models.High])
}

func TestDefaultsAreComplete(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
	require.NoError(t, DefaultMessages().Validate())
	for m, mt := range DefaultMessages() {
		_, err := NewMessageTable(mt)
		assert.NoError(t, err, m)
	}
}
