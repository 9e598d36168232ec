package history

import (
	"math"
	"testing"
)

func TestRecordAppendsInOrder(t *testing.T) {
	log := NewLog()

	log.Record("pricing.per_use_fee", 1, 1.0, 1.5, -33626000, -31601000)
	log.Record("volume.collection_rate", 2, 0.92, 0.85, -31601000, -32500000)

	if log.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", log.Len())
	}

	records := log.Records()
	if records[0].Variable != "pricing.per_use_fee" || records[1].Variable != "volume.collection_rate" {
		t.Error("records must keep append order")
	}
	if records[0].ID == "" || records[1].ID == "" {
		t.Error("each record needs an id")
	}
	if records[0].ID == records[1].ID {
		t.Error("record ids must be unique")
	}
	if records[0].Timestamp.IsZero() {
		t.Error("record timestamp must be set")
	}
}

func TestRecordNoOpOnUnchangedValue(t *testing.T) {
	log := NewLog()
	if rec := log.Record("cogs.wash_cost", 1, 3.0, 3.0, -100, -100); rec != nil {
		t.Error("unchanged value must not produce a record")
	}
	if log.Len() != 0 {
		t.Errorf("expected empty log, got %d records", log.Len())
	}
}

func TestRecordImpact(t *testing.T) {
	log := NewLog()
	rec := log.Record("pricing.per_use_fee", 1, 1.0, 1.5, -1000000, -750000)
	if rec == nil {
		t.Fatal("expected a record")
	}

	if rec.ImpactAbsolute != 250000 {
		t.Errorf("impact: expected 250000, got %f", rec.ImpactAbsolute)
	}
	// +250,000 against a 1,000,000 loss is a 25% improvement.
	if math.Abs(rec.ImpactPct-25) > 1e-9 {
		t.Errorf("impact pct: expected 25, got %f", rec.ImpactPct)
	}

	zero := log.Record("pricing.monthly_fee", 1, 5000, 6000, 0, 300000)
	if zero.ImpactPct != 0 {
		t.Errorf("impact pct must be 0 when the before value is 0, got %f", zero.ImpactPct)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Record("opex.tech", 1, 8000000, 7000000, -100, -90)

	snapshot := log.Records()
	snapshot[0].Variable = "tampered"

	if log.Records()[0].Variable != "opex.tech" {
		t.Error("mutating the returned slice must not touch the log")
	}
}
