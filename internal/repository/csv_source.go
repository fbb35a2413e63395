package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/domain/repository"
	"ChainPulse/pkg/util"
)

// CSVSource reads the metric table from a CSV file with a header row.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV-backed SeriesSource.
func NewCSVSource(path string) repository.SeriesSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.path }

func (s *CSVSource) LoadSeries(ctx context.Context) (models.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	series, err := ParseCSV(f, s.path)
	if err != nil {
		return nil, err
	}
	return series, nil
}

func (s *CSVSource) LoadLatest(ctx context.Context, n int) (models.Series, error) {
	series, err := s.LoadSeries(ctx)
	if err != nil {
		return nil, err
	}
	return series.Tail(n), nil
}

// ParseCSV decodes a metric table. The header must contain every required
// field; additional columns are ignored. Rows keep file order.
func ParseCSV(r io.Reader, source string) (models.Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.MissingFieldError{Field: models.DateField, Source: source}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, field := range models.RequiredFields() {
		if _, ok := index[field]; !ok {
			return nil, &models.MissingFieldError{Field: field, Source: source}
		}
	}

	metrics := append(models.TrackedMetrics(), models.RealizedCap)
	var series models.Series
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		obs := models.Observation{Date: strings.TrimSpace(rec[index[models.DateField]])}
		for _, m := range metrics {
			raw := rec[index[string(m)]]
			v, err := util.ParseFloat(raw)
			if err != nil {
				return nil, &models.FieldParseError{Row: row, Field: string(m), Value: raw, Err: err}
			}
			obs.Set(m, v)
		}
		series = append(series, obs)
	}
	return series, nil
}
