package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/domain/repository"
	"ChainPulse/pkg/util"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ClickHouseSource reads the metric table from a ClickHouse table whose
// columns carry the CSV header names.
type ClickHouseSource struct {
	db    *sql.DB
	table string
}

// NewClickHouseSource creates a ClickHouse-backed SeriesSource. table may be
// qualified with a database name.
func NewClickHouseSource(db *sql.DB, table string) (repository.SeriesSource, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &ClickHouseSource{db: db, table: table}, nil
}

func (s *ClickHouseSource) Name() string { return "clickhouse:" + s.table }

func (s *ClickHouseSource) LoadSeries(ctx context.Context) (models.Series, error) {
	return s.load(ctx, 0)
}

func (s *ClickHouseSource) LoadLatest(ctx context.Context, n int) (models.Series, error) {
	return s.load(ctx, n)
}

func (s *ClickHouseSource) load(ctx context.Context, n int) (models.Series, error) {
	if err := s.checkColumns(ctx); err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC", strings.Join(models.RequiredFields(), ", "), s.table, models.DateField)
	args := []interface{}{}
	if n > 0 {
		q += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	metrics := append(models.TrackedMetrics(), models.RealizedCap)
	var newestFirst models.Series
	for row := 1; rows.Next(); row++ {
		vals := make([]interface{}, 1+len(metrics))
		dest := make([]interface{}, len(vals))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", row, err)
		}

		obs := models.Observation{Date: util.DateString(vals[0])}
		for i, m := range metrics {
			v, err := util.ToFloat64(vals[i+1])
			if err != nil {
				return nil, &models.FieldParseError{Row: row, Field: string(m), Value: fmt.Sprint(vals[i+1]), Err: err}
			}
			obs.Set(m, v)
		}
		newestFirst = append(newestFirst, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}

	series := make(models.Series, len(newestFirst))
	for i, obs := range newestFirst {
		series[len(newestFirst)-1-i] = obs
	}
	return series, nil
}

// checkColumns maps absent columns to MissingFieldError before the ordered
// query fails on them.
func (s *ClickHouseSource) checkColumns(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", s.table))
	if err != nil {
		return fmt.Errorf("probe %s: %w", s.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns %s: %w", s.table, err)
	}
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	for _, f := range models.RequiredFields() {
		if !have[f] {
			return &models.MissingFieldError{Field: f, Source: s.Name()}
		}
	}
	return nil
}
