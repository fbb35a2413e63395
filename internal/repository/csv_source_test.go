package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
	"ChainPulse/pkg/util"
)

const sampleCSV = `date,NUPL,MVRV_LTH,MVRV_STH,SOPR_STH,RealizedCap,Price
2024-11-01,0.30,3.1,1.02,1.01,52100000000,69000
2024-11-02,0.10,7.5,0.95,0.99,52340000000,70100
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkonchain.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSource_LoadSeries(t *testing.T) {
	src := NewCSVSource(writeCSV(t, sampleCSV))

	series, err := src.LoadSeries(context.Background())

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, models.Observation{
		Date: "2024-11-02", NUPL: 0.10, MVRVLTH: 7.5, MVRVSTH: 0.95, SOPRSTH: 0.99, RealizedCap: 52_340_000_000,
	}, series[1])
	assert.Equal(t, "2024-11-01", series[0].Date)
}

func TestCSVSource_LoadLatest(t *testing.T) {
	src := NewCSVSource(writeCSV(t, sampleCSV))

	series, err := src.LoadLatest(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-11-02", series[0].Date)
}

func TestParseCSV_MissingField(t *testing.T) {
	in := "date,NUPL,MVRV_LTH,MVRV_STH,RealizedCap\n2024-11-01,0.3,3,1,5\n"

	_, err := ParseCSV(strings.NewReader(in), "test.csv")

	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "SOPR_STH", missing.Field)
	assert.Equal(t, "test.csv", missing.Source)
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""), "empty.csv")

	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "date", missing.Field)
}

func TestParseCSV_NonNumericCell(t *testing.T) {
	in := "date,NUPL,MVRV_LTH,MVRV_STH,SOPR_STH,RealizedCap\n" +
		"2024-11-01,0.3,3,1,1,5\n" +
		"2024-11-02,n/a,3,1,1,5\n"

	_, err := ParseCSV(strings.NewReader(in), "test.csv")

	var parse *models.FieldParseError
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, 3, parse.Row)
	assert.Equal(t, "NUPL", parse.Field)
	assert.Equal(t, "n/a", parse.Value)
}

func TestParseCSV_NonFiniteCell(t *testing.T) {
	for _, cell := range []string{"NaN", "inf", "-Inf", "+Infinity"} {
		t.Run(cell, func(t *testing.T) {
			in := "date,NUPL,MVRV_LTH,MVRV_STH,SOPR_STH,RealizedCap\n" +
				"2024-11-01,0.3,3,1,1,5\n" +
				"2024-11-02,0.3,3,1,1," + cell + "\n"

			_, err := ParseCSV(strings.NewReader(in), "test.csv")

			var parse *models.FieldParseError
			require.ErrorAs(t, err, &parse)
			assert.Equal(t, 3, parse.Row)
			assert.Equal(t, "RealizedCap", parse.Field)
			assert.ErrorIs(t, err, util.ErrNonFinite)
			assert.True(t, models.IsDataError(err))
		})
	}
}

func TestParseCSV_HeaderOnlyIsEmptySeries(t *testing.T) {
	series, err := ParseCSV(strings.NewReader("date,NUPL,MVRV_LTH,MVRV_STH,SOPR_STH,RealizedCap\n"), "test.csv")

	require.NoError(t, err)
	assert.Empty(t, series)
	_, _, err = series.LatestPair()
	var short *models.InsufficientDataError
	assert.ErrorAs(t, err, &short)
}

func TestParseCSV_ColumnOrderIndependent(t *testing.T) {
	in := "RealizedCap,SOPR_STH,MVRV_STH,MVRV_LTH,NUPL,date\n1e9,1.0,0.9,2.5,0.5,2024-11-01\n"

	series, err := ParseCSV(strings.NewReader(in), "test.csv")

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 0.5, series[0].NUPL)
	assert.Equal(t, 1e9, series[0].RealizedCap)
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := src.LoadSeries(context.Background())

	require.Error(t, err)
	assert.False(t, models.IsDataError(err))
}
