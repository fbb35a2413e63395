package util

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString renders a date-like driver value. Midnight UTC timestamps print as
// plain dates, other times as RFC3339.
func DateString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		u := t.UTC()
		if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
			return u.Format(dateLayout)
		}
		return u.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return DateString(*t)
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(v)
	}
}

// ToFloat64 converts a numeric driver value to float64. NaN and infinities
// are rejected with ErrNonFinite.
func ToFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return Finite(n)
	case float32:
		return Finite(float64(n))
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case *float64:
		if n == nil {
			return 0, fmt.Errorf("null value")
		}
		return Finite(*n)
	case string:
		return ParseFloat(n)
	case []byte:
		return ParseFloat(string(n))
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return ParseFloat(fmt.Sprint(v))
	}
}
