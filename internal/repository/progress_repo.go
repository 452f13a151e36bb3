package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tinyquest/internal/database"
	"tinyquest/internal/models"
)

// ProgressRepository persists one versioned progression document per
// profile as a JSON blob in the progress_states table
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load reads a profile's progression document. Returns nil, nil when the
// profile has never been saved.
func (r *ProgressRepository) Load(profileID string) (*models.ProgressState, error) {
	var raw []byte
	query := "SELECT state FROM progress_states WHERE profile_id = ?"
	err := r.db.QueryRow(query, profileID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress for %s: %w", profileID, err)
	}

	var state models.ProgressState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode progress for %s: %w", profileID, err)
	}

	return &state, nil
}

// Save upserts a profile's progression document
func (r *ProgressRepository) Save(profileID string, state models.ProgressState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode progress for %s: %w", profileID, err)
	}

	query := r.db.GetDialect().UpsertProgressState()
	_, err = r.db.Exec(query, profileID, state.Version, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", profileID, err)
	}
	return nil
}

// LoadAll reads every stored progression document keyed by profile ID,
// used by backup export and report generation
func (r *ProgressRepository) LoadAll() (map[string]models.ProgressState, error) {
	rows, err := r.db.Query("SELECT profile_id, state FROM progress_states")
	if err != nil {
		return nil, fmt.Errorf("failed to query progress states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]models.ProgressState)
	for rows.Next() {
		var profileID string
		var raw []byte
		if err := rows.Scan(&profileID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan progress state: %w", err)
		}

		var state models.ProgressState
		if err := json.Unmarshal(raw, &state); err != nil {
			return nil, fmt.Errorf("failed to decode progress for %s: %w", profileID, err)
		}
		states[profileID] = state
	}

	return states, nil
}

// Delete removes a profile's progression document
func (r *ProgressRepository) Delete(profileID string) error {
	_, err := r.db.Exec("DELETE FROM progress_states WHERE profile_id = ?", profileID)
	if err != nil {
		return fmt.Errorf("failed to delete progress for %s: %w", profileID, err)
	}
	return nil
}
