// Package history keeps the append-only audit trail of assumption edits and
// their downstream impact on Year-3 net income. The log never recomputes
// anything itself: the caller captures net income before and after the edit
// (full recompute, not an incremental update — field interactions are not
// linear) and hands both values in.
package history

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Record is one assumption mutation with its measured impact.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Variable  string    `json:"variable"` // dotted field path
	Year      int       `json:"year"`     // which year's set was edited
	OldValue  float64   `json:"old_value"`
	NewValue  float64   `json:"new_value"`

	Year3NetIncomeBefore float64 `json:"year3_net_income_before"`
	Year3NetIncomeAfter  float64 `json:"year3_net_income_after"`
	ImpactAbsolute       float64 `json:"impact_abs"`
	ImpactPct            float64 `json:"impact_pct"`
}

// Log is an append-only sequence of records. Records are never mutated or
// reordered once appended; clearing or exporting is the caller's call, via
// Records and a fresh Log.
type Log struct {
	records []Record
}

// NewLog returns an empty change log.
func NewLog() *Log {
	return &Log{}
}

// Record appends one change. No-op when the value did not actually change.
func (l *Log) Record(variable string, year int, oldValue, newValue, y3Before, y3After float64) *Record {
	if oldValue == newValue {
		return nil
	}

	impact := y3After - y3Before
	impactPct := 0.0
	if y3Before != 0 {
		impactPct = impact / math.Abs(y3Before) * 100
	}

	rec := Record{
		ID:                   uuid.New().String(),
		Timestamp:            time.Now(),
		Variable:             variable,
		Year:                 year,
		OldValue:             oldValue,
		NewValue:             newValue,
		Year3NetIncomeBefore: y3Before,
		Year3NetIncomeAfter:  y3After,
		ImpactAbsolute:       impact,
		ImpactPct:            impactPct,
	}
	l.records = append(l.records, rec)
	return &l.records[len(l.records)-1]
}

// Len returns the number of recorded changes.
func (l *Log) Len() int { return len(l.records) }

// Records returns the records in append order. The returned slice is a copy;
// the log itself stays append-only.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}
