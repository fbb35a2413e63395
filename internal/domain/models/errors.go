package models

import (
	"errors"
	"fmt"
)

// MissingFieldError reports a required column absent from a source.
type MissingFieldError struct {
	Field  string
	Source string
}

func (e *MissingFieldError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("%s: missing required field %q", e.Source, e.Field)
}

// InsufficientDataError reports a series too short for change detection.
type InsufficientDataError struct {
	Rows int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least 2 observations, got %d", e.Rows)
}

// FieldParseError reports a required cell that is not numeric.
type FieldParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("row %d: field %q: cannot parse %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// DeliveryError reports a failed notification delivery. The report itself was computed.
type DeliveryError struct {
	Channel     string
	Destination string
	Err         error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver via %s to %s: %v", e.Channel, e.Destination, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsDataError reports whether err was caused by the input table rather than
// by infrastructure.
func IsDataError(err error) bool {
	var (
		missing *MissingFieldError
		short   *InsufficientDataError
		parse   *FieldParseError
	)
	return errors.As(err, &missing) || errors.As(err, &short) || errors.As(err, &parse)
}

// ErrorKind is a short, stable name for the class of err, used as a metric label.
func ErrorKind(err error) string {
	var (
		missing *MissingFieldError
		parse   *FieldParseError
		short   *InsufficientDataError
		deliver *DeliveryError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_field"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &short):
		return "insufficient_data"
	case errors.As(err, &deliver):
		return "delivery"
	default:
		return "internal"
	}
}
