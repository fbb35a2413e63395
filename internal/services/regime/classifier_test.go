package regime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
)

func lthTable(t *testing.T) ThresholdTable {
	t.Helper()
	tbl, err := NewThresholdTable(
		Band{Label: models.Low, Min: 0, Max: 2},
		Band{Label: models.Neutral, Min: 2, Max: 7},
		Band{Label: models.High, Min: 7, Max: 10},
	)
	require.NoError(t, err)
	return tbl
}

func TestClassify_InsideBands(t *testing.T) {
	tbl := lthTable(t)

	assert.Equal(t, models.Low, Classify(1.2, tbl))
	assert.Equal(t, models.Neutral, Classify(4.5, tbl))
	assert.Equal(t, models.High, Classify(7.5, tbl))
}

func TestClassify_BoundaryBelongsToUpperBand(t *testing.T) {
	tbl := lthTable(t)

	assert.Equal(t, models.Low, Classify(0, tbl))
	assert.Equal(t, models.Neutral, Classify(2, tbl))
	assert.Equal(t, models.High, Classify(7, tbl))
	assert.Equal(t, models.Low, Classify(math.Nextafter(2, 0), tbl))
}

func TestClassify_Saturates(t *testing.T) {
	tbl := lthTable(t)

	for _, v := range []float64{-1, -1e9, math.Inf(-1)} {
		assert.Equal(t, models.Low, Classify(v, tbl), "value %v", v)
	}
	for _, v := range []float64{10, 10.0001, 1e12, math.Inf(1)} {
		assert.Equal(t, models.High, Classify(v, tbl), "value %v", v)
	}
}

func TestClassify_TotalOverOddInput(t *testing.T) {
	assert.Equal(t, models.Low, Classify(math.NaN(), lthTable(t)))
	assert.Equal(t, models.Low, Classify(5, ThresholdTable{}))
}

func TestClassify_FallbackUsesLastBandInTableOrder(t *testing.T) {
	// high listed first: the last band checked is low, whose max is 2.
	tbl, err := NewThresholdTable(
		Band{Label: models.High, Min: 7, Max: 10},
		Band{Label: models.Neutral, Min: 2, Max: 7},
		Band{Label: models.Low, Min: 0, Max: 2},
	)
	require.NoError(t, err)

	assert.Equal(t, models.High, Classify(12, tbl))
	assert.Equal(t, models.Low, Classify(-3, tbl))
	assert.Equal(t, models.Neutral, Classify(2, tbl))
}

func TestClassify_GapFallsBackToSaturation(t *testing.T) {
	tbl, err := NewThresholdTable(
		Band{Label: models.Low, Min: 0, Max: 1},
		Band{Label: models.Neutral, Min: 2, Max: 3},
		Band{Label: models.High, Min: 3, Max: 4},
	)
	require.NoError(t, err)

	// 1.5 is in the gap and below the last max, so it is silently low.
	assert.Equal(t, models.Low, Classify(1.5, tbl))
	assert.NotEmpty(t, tbl.Gaps())
}

func TestClassify_DefaultTablesProperties(t *testing.T) {
	for metric, tbl := range DefaultTables() {
		bands := tbl.Bands()
		lo, hi := bands[0].Min, bands[len(bands)-1].Max

		assert.Equal(t, models.Low, Classify(lo-0.001, tbl), metric)
		assert.Equal(t, models.High, Classify(hi, tbl), metric)
		for i, b := range bands {
			assert.Equal(t, b.Label, Classify(b.Min, tbl), metric)
			if i+1 < len(bands) {
				assert.Equal(t, bands[i+1].Label, Classify(b.Max, tbl), metric)
				assert.NotEqual(t, b.Label, Classify(b.Max, tbl), metric)
			}
		}
		assert.Empty(t, tbl.Gaps(), metric)
	}
}

func TestClassifyObservation(t *testing.T) {
	obs := models.Observation{Date: "2024-11-02", NUPL: 0.10, MVRVLTH: 7.5, MVRVSTH: 1.0, SOPRSTH: 1.2}

	got := ClassifyObservation(obs, DefaultTables())

	assert.Equal(t, models.Classifications{
		models.NUPL:    models.Low,
		models.MVRVLTH: models.High,
		models.MVRVSTH: models.Neutral,
		models.SOPRSTH: models.High,
	}, got)
}
