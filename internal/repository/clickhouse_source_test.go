package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
	"ChainPulse/pkg/util"
)

const (
	probeQuery  = "SELECT * FROM metrics.checkonchain LIMIT 0"
	latestQuery = "SELECT date, NUPL, MVRV_LTH, MVRV_STH, SOPR_STH, RealizedCap FROM metrics.checkonchain ORDER BY date DESC"
)

var allColumns = []string{"date", "NUPL", "MVRV_LTH", "MVRV_STH", "SOPR_STH", "RealizedCap"}

func newMockSource(t *testing.T) (*ClickHouseSource, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	src, err := NewClickHouseSource(db, "metrics.checkonchain")
	require.NoError(t, err)
	return src.(*ClickHouseSource), mock
}

func TestClickHouseSource_LoadLatestReversesRows(t *testing.T) {
	src, mock := newMockSource(t)
	mock.ExpectQuery(probeQuery).WillReturnRows(sqlmock.NewRows(append(allColumns, "Price")))
	mock.ExpectQuery(latestQuery + " LIMIT ?").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(allColumns).
			AddRow(time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), 0.10, 7.5, 0.95, 0.99, 52_340_000_000.0).
			AddRow(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), 0.30, 3.1, 1.02, 1.01, 52_100_000_000.0))

	series, err := src.LoadLatest(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-11-01", series[0].Date)
	assert.Equal(t, "2024-11-02", series[1].Date)
	assert.Equal(t, 7.5, series[1].MVRVLTH)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClickHouseSource_MissingColumn(t *testing.T) {
	src, mock := newMockSource(t)
	mock.ExpectQuery(probeQuery).WillReturnRows(sqlmock.NewRows([]string{"date", "NUPL", "MVRV_LTH", "MVRV_STH", "SOPR_STH"}))

	_, err := src.LoadSeries(context.Background())

	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "RealizedCap", missing.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClickHouseSource_NullValue(t *testing.T) {
	src, mock := newMockSource(t)
	mock.ExpectQuery(probeQuery).WillReturnRows(sqlmock.NewRows(allColumns))
	mock.ExpectQuery(latestQuery).
		WillReturnRows(sqlmock.NewRows(allColumns).AddRow("2024-11-02", nil, 7.5, 0.95, 0.99, 1.0))

	_, err := src.LoadSeries(context.Background())

	var parse *models.FieldParseError
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, "NUPL", parse.Field)
}

func TestClickHouseSource_NaNValue(t *testing.T) {
	src, mock := newMockSource(t)
	mock.ExpectQuery(probeQuery).WillReturnRows(sqlmock.NewRows(allColumns))
	mock.ExpectQuery(latestQuery).
		WillReturnRows(sqlmock.NewRows(allColumns).AddRow("2024-11-02", 0.1, math.NaN(), 0.95, 0.99, 1.0))

	_, err := src.LoadSeries(context.Background())

	var parse *models.FieldParseError
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, "MVRV_LTH", parse.Field)
	assert.ErrorIs(t, err, util.ErrNonFinite)
}

func TestNewClickHouseSource_RejectsUnsafeTable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewClickHouseSource(db, "x; DROP TABLE y")
	assert.Error(t, err)
}
