package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"loopbox_model/pkg/core/assumption"
)

// Scenario is a named snapshot of all three years' assumptions.
type Scenario struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Years     assumption.YearSet `json:"year_data"`
	CreatedAt time.Time          `json:"created_at"`
}

// ScenarioRepo stores scenario snapshots.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS scenarios (
//	  id UUID PRIMARY KEY,
//	  name TEXT NOT NULL,
//	  scenario_json JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type ScenarioRepo struct{}

// NewScenarioRepo creates a new repository instance.
func NewScenarioRepo() *ScenarioRepo {
	return &ScenarioRepo{}
}

// Save persists a named snapshot and returns its id.
func (r *ScenarioRepo) Save(ctx context.Context, name string, years assumption.YearSet) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(years)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scenario: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO scenarios (id, name, scenario_json, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := pool.Exec(ctx, query, id, name, jsonData, time.Now()); err != nil {
		return "", fmt.Errorf("failed to save scenario: %w", err)
	}
	return id, nil
}

// Load retrieves one scenario by id.
func (r *ScenarioRepo) Load(ctx context.Context, id string) (*Scenario, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT id, name, scenario_json, created_at FROM scenarios WHERE id = $1`

	var sc Scenario
	var jsonData []byte
	err := pool.QueryRow(ctx, query, id).Scan(&sc.ID, &sc.Name, &jsonData, &sc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no scenario found with id %s", id)
		}
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	if err := json.Unmarshal(jsonData, &sc.Years); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario data: %w", err)
	}
	return &sc, nil
}

// List returns all saved scenarios, newest first, without their year data.
func (r *ScenarioRepo) List(ctx context.Context) ([]Scenario, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT id, name, created_at FROM scenarios ORDER BY created_at DESC`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var out []Scenario
	for rows.Next() {
		var sc Scenario
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
