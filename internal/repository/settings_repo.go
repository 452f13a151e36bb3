package repository

import (
	"tinyquest/internal/database"
)

// Setting names used by the app.
const (
	SettingReportEmail   = "report_email"
	SettingReportEnabled = "weekly_report_enabled"
)

type SettingsRepository struct {
	db database.DBTX
}

func NewSettingsRepository(db database.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by name
func (r *SettingsRepository) GetSetting(name string) (string, error) {
	var value string
	query := `SELECT value FROM settings WHERE name = ?`
	err := r.db.QueryRow(query, name).Scan(&value)
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(name, value string) error {
	query := r.db.GetDialect().UpsertSetting()
	_, err := r.db.Exec(query, name, value)
	return err
}

// ReportEmail returns the parent email for weekly reports, empty when
// no account has been linked
func (r *SettingsRepository) ReportEmail() string {
	value, err := r.GetSetting(SettingReportEmail)
	if err != nil {
		return ""
	}
	return value
}

// SetReportEmail stores the parent email for weekly reports
func (r *SettingsRepository) SetReportEmail(email string) error {
	return r.SetSetting(SettingReportEmail, email)
}

// IsWeeklyReportEnabled checks whether weekly report emails are on
func (r *SettingsRepository) IsWeeklyReportEnabled() bool {
	value, err := r.GetSetting(SettingReportEnabled)
	if err != nil {
		return false // Default to off until a parent opts in
	}
	return value == "true"
}

// SetWeeklyReportEnabled turns weekly report emails on or off
func (r *SettingsRepository) SetWeeklyReportEnabled(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return r.SetSetting(SettingReportEnabled, value)
}
