package util

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDateStringMidnight(t *testing.T) {
	d := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if got := DateString(d); got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestDateStringTimestamp(t *testing.T) {
	d := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	if got := DateString(d); got != "2024-10-10T10:10:10Z" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestDateStringPassthrough(t *testing.T) {
	if got := DateString([]byte("2024-10-10")); got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestToFloat64(t *testing.T) {
	for _, v := range []any{1.5, float32(1.5), "1.5", []byte(" 1.5 ")} {
		got, err := ToFloat64(v)
		if err != nil || got != 1.5 {
			t.Fatalf("ToFloat64(%#v) = %v, %v", v, got, err)
		}
	}
	if _, err := ToFloat64(nil); err == nil {
		t.Fatalf("expected error for nil")
	}
	if _, err := ToFloat64("abc"); err == nil {
		t.Fatalf("expected error for text")
	}
}

func TestToFloat64RejectsNonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), float32(math.Inf(-1)), "NaN", "inf", []byte("-Inf")} {
		if _, err := ToFloat64(v); !errors.Is(err, ErrNonFinite) {
			t.Fatalf("ToFloat64(%#v) error = %v, want ErrNonFinite", v, err)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected list %v", got)
	}
}
