package regime

import (
	"fmt"
	"sort"

	"ChainPulse/internal/domain/models"
)

// Band is the half-open interval [Min, Max) assigned to a label.
type Band struct {
	Label models.Label `json:"label"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
}

// Contains reports whether v lies in [Min, Max).
func (b Band) Contains(v float64) bool {
	return b.Min <= v && v < b.Max
}

// ThresholdTable is an immutable, ordered list of bands for one metric.
type ThresholdTable struct {
	bands []Band
}

// NewThresholdTable validates bands and keeps them in the given order.
// Gaps and overlaps between bands are accepted; see Gaps.
func NewThresholdTable(bands ...Band) (ThresholdTable, error) {
	if len(bands) == 0 {
		return ThresholdTable{}, fmt.Errorf("threshold table has no bands")
	}
	seen := make(map[models.Label]bool, len(bands))
	for _, b := range bands {
		if !b.Label.Valid() {
			return ThresholdTable{}, fmt.Errorf("unknown label %q", b.Label)
		}
		if seen[b.Label] {
			return ThresholdTable{}, fmt.Errorf("duplicate label %q", b.Label)
		}
		seen[b.Label] = true
		if !(b.Min < b.Max) {
			return ThresholdTable{}, fmt.Errorf("band %q: min %v must be below max %v", b.Label, b.Min, b.Max)
		}
	}
	cp := make([]Band, len(bands))
	copy(cp, bands)
	return ThresholdTable{bands: cp}, nil
}

// MustThresholdTable is NewThresholdTable for static tables; it panics on error.
func MustThresholdTable(bands ...Band) ThresholdTable {
	t, err := NewThresholdTable(bands...)
	if err != nil {
		panic(err)
	}
	return t
}

// Bands returns a copy of the bands in table order.
func (t ThresholdTable) Bands() []Band {
	cp := make([]Band, len(t.bands))
	copy(cp, t.bands)
	return cp
}

// Len returns the number of bands.
func (t ThresholdTable) Len() int { return len(t.bands) }

// Gaps lists holes and overlaps between neighbouring bands ordered by Min.
// An empty result means the bands form one contiguous range.
func (t ThresholdTable) Gaps() []string {
	sorted := t.Bands()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	var issues []string
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		switch {
		case cur.Min > prev.Max:
			issues = append(issues, fmt.Sprintf("gap between %s [%v, %v) and %s [%v, %v)", prev.Label, prev.Min, prev.Max, cur.Label, cur.Min, cur.Max))
		case cur.Min < prev.Max:
			issues = append(issues, fmt.Sprintf("overlap between %s [%v, %v) and %s [%v, %v)", prev.Label, prev.Min, prev.Max, cur.Label, cur.Min, cur.Max))
		}
	}
	return issues
}

// MessageTable maps each label to its explanatory sentence.
type MessageTable map[models.Label]string

// NewMessageTable requires a sentence for every label.
func NewMessageTable(m map[models.Label]string) (MessageTable, error) {
	out := make(MessageTable, len(m))
	for _, l := range models.Labels() {
		s, ok := m[l]
		if !ok || s == "" {
			return nil, fmt.Errorf("missing message for label %q", l)
		}
		out[l] = s
	}
	for l := range m {
		if !l.Valid() {
			return nil, fmt.Errorf("unknown label %q", l)
		}
	}
	return out, nil
}

// Tables holds the threshold table of every tracked metric.
type Tables map[models.Metric]ThresholdTable

// Messages holds the message table of every tracked metric.
type Messages map[models.Metric]MessageTable

// Validate checks that every tracked metric is configured.
func (t Tables) Validate() error {
	for _, m := range models.TrackedMetrics() {
		if tbl, ok := t[m]; !ok || tbl.Len() == 0 {
			return fmt.Errorf("no threshold table for %s", m)
		}
	}
	return nil
}

// Validate checks that every tracked metric has messages.
func (ms Messages) Validate() error {
	for _, m := range models.TrackedMetrics() {
		if _, ok := ms[m]; !ok {
			return fmt.Errorf("no message table for %s", m)
		}
	}
	return nil
}
