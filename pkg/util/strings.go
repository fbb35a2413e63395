package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNonFinite is returned for NaN and infinite values.
var ErrNonFinite = errors.New("value is not finite")

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// ParseFloat parses a decimal cell, ignoring surrounding whitespace.
// NaN and infinities are rejected with ErrNonFinite.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return Finite(v)
}

// Finite returns v, or ErrNonFinite when v is NaN or infinite.
func Finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}

// SplitList splits a comma separated list and drops empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
