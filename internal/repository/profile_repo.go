package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tinyquest/internal/database"
	"tinyquest/internal/models"
)

// ProfileRepository handles database operations for learner profiles
type ProfileRepository struct {
	db database.DBTX
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db database.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateProfile creates a new learner profile
func (r *ProfileRepository) CreateProfile(name, avatarName, avatarColor string) (*models.Profile, error) {
	now := time.Now().UTC()
	profile := &models.Profile{
		ID:          uuid.NewString(),
		Name:        name,
		AvatarName:  avatarName,
		AvatarColor: avatarColor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := "INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.db.Exec(query, profile.ID, profile.Name, profile.AvatarName, profile.AvatarColor, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetProfileByID retrieves a profile by ID. Returns nil, nil when absent.
func (r *ProfileRepository) GetProfileByID(profileID string) (*models.Profile, error) {
	query := "SELECT id, name, avatar_name, avatar_color, created_at, updated_at FROM profiles WHERE id = ?"
	profile := &models.Profile{}
	err := r.db.QueryRow(query, profileID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.AvatarName,
		&profile.AvatarColor,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// GetAllProfiles retrieves all learner profiles, oldest first
func (r *ProfileRepository) GetAllProfiles() ([]models.Profile, error) {
	query := `
		SELECT id, name, avatar_name, avatar_color, created_at, updated_at
		FROM profiles
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.AvatarName,
			&profile.AvatarColor,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// UpdateProfile updates a profile's name and avatar
func (r *ProfileRepository) UpdateProfile(profileID, name, avatarName, avatarColor string) error {
	query := "UPDATE profiles SET name = ?, avatar_name = ?, avatar_color = ?, updated_at = ? WHERE id = ?"
	_, err := r.db.Exec(query, name, avatarName, avatarColor, time.Now().UTC(), profileID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// DeleteProfile deletes a profile and its progress document
func (r *ProfileRepository) DeleteProfile(profileID string) error {
	if _, err := r.db.Exec("DELETE FROM progress_states WHERE profile_id = ?", profileID); err != nil {
		return fmt.Errorf("failed to delete profile progress: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM profiles WHERE id = ?", profileID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// ImportProfile inserts a profile keeping its original ID and timestamps,
// used by backup restore
func (r *ProfileRepository) ImportProfile(profile *models.Profile) error {
	query := "INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.db.Exec(query, profile.ID, profile.Name, profile.AvatarName, profile.AvatarColor, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to import profile: %w", err)
	}
	return nil
}
