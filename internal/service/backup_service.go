package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"tinyquest/internal/database"
	"tinyquest/internal/models"
	"tinyquest/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version        string                          `json:"version"`
	ExportedAt     time.Time                       `json:"exported_at"`
	Profiles       []models.Profile                `json:"profiles"`
	ProgressStates map[string]models.ProgressState `json:"progress_states"`
	Settings       map[string]string               `json:"settings"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Export complete: %s", outputPath)
	return nil
}

// ExportToWriter writes a complete backup as JSON
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Settings:   make(map[string]string),
	}

	profiles, err := repository.NewProfileRepository(s.db).GetAllProfiles()
	if err != nil {
		return fmt.Errorf("failed to export profiles: %w", err)
	}
	backup.Profiles = profiles

	states, err := repository.NewProgressRepository(s.db).LoadAll()
	if err != nil {
		return fmt.Errorf("failed to export progress states: %w", err)
	}
	backup.ProgressStates = states

	if err := s.exportSettings(backup); err != nil {
		return fmt.Errorf("failed to export settings: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported %d profiles, %d progress documents, %d settings",
		len(backup.Profiles), len(backup.ProgressStates), len(backup.Settings))
	return nil
}

// exportSettings copies every settings row into the backup
func (s *BackupService) exportSettings(backup *BackupData) error {
	rows, err := s.db.Query("SELECT name, value FROM settings")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return err
		}
		backup.Settings[name] = value
	}
	return rows.Err()
}

// Import restores a backup file into the database. The whole restore
// runs in one transaction; existing rows with matching IDs cause the
// import to fail rather than silently merge.
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a JSON backup
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	if backup.Version != "1.0" {
		return fmt.Errorf("unsupported backup version: %s", backup.Version)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	profileRepo := repository.NewProfileRepository(tx)
	for i := range backup.Profiles {
		if err := profileRepo.ImportProfile(&backup.Profiles[i]); err != nil {
			return err
		}
	}

	progressRepo := repository.NewProgressRepository(tx)
	for profileID, state := range backup.ProgressStates {
		if err := progressRepo.Save(profileID, state); err != nil {
			return err
		}
	}

	settingsRepo := repository.NewSettingsRepository(tx)
	for name, value := range backup.Settings {
		if err := settingsRepo.SetSetting(name, value); err != nil {
			return fmt.Errorf("failed to import setting %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Printf("Import complete: %d profiles, %d progress documents, %d settings",
		len(backup.Profiles), len(backup.ProgressStates), len(backup.Settings))
	return nil
}
