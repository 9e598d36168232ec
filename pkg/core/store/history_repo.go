package store

import (
	"context"
	"fmt"

	"loopbox_model/pkg/core/history"
)

// HistoryRepo persists change records so an exported audit trail survives
// the interactive session.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS change_history (
//	  id UUID PRIMARY KEY,
//	  recorded_at TIMESTAMPTZ NOT NULL,
//	  variable TEXT NOT NULL,
//	  year INT NOT NULL,
//	  old_value DOUBLE PRECISION NOT NULL,
//	  new_value DOUBLE PRECISION NOT NULL,
//	  y3_net_income_before DOUBLE PRECISION NOT NULL,
//	  y3_net_income_after DOUBLE PRECISION NOT NULL
//	);
type HistoryRepo struct{}

// NewHistoryRepo creates a new repository instance.
func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{}
}

// SaveAll inserts every record of one session's change log.
func (r *HistoryRepo) SaveAll(ctx context.Context, records []history.Record) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO change_history
			(id, recorded_at, variable, year, old_value, new_value, y3_net_income_before, y3_net_income_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING;
	`
	for _, rec := range records {
		_, err := pool.Exec(ctx, query,
			rec.ID, rec.Timestamp, rec.Variable, rec.Year,
			rec.OldValue, rec.NewValue, rec.Year3NetIncomeBefore, rec.Year3NetIncomeAfter)
		if err != nil {
			return fmt.Errorf("failed to save change record %s: %w", rec.ID, err)
		}
	}
	return nil
}
