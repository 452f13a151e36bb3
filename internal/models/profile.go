package models

import "time"

// Profile represents one learner on this installation. Each profile
// owns its own progression document.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarName  string    `json:"avatar_name"`
	AvatarColor string    `json:"avatar_color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileWithProgress combines a profile with a summary of its
// progression state for list views.
type ProfileWithProgress struct {
	Profile         Profile `json:"profile"`
	TotalStars      int     `json:"total_stars"`
	StreakDays      int     `json:"streak_days"`
	BadgeCount      int     `json:"badge_count"`
	CompletedLevels int     `json:"completed_levels"`
}
