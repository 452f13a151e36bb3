package service

import (
	"fmt"
	"strings"

	"tinyquest/internal/credentials"
	"tinyquest/internal/models"
	"tinyquest/internal/repository"
	"tinyquest/internal/utils"
)

// NameScreener checks profile names against the blocked word filter.
// Implemented by database.DB.
type NameScreener interface {
	ScreenName(name string) ([]string, error)
}

// ProfileService manages learner profiles.
type ProfileService struct {
	profiles *repository.ProfileRepository
	progress *ProgressService
	screener NameScreener
}

// NewProfileService creates a new profile service
func NewProfileService(profiles *repository.ProfileRepository, progress *ProgressService, screener NameScreener) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		progress: progress,
		screener: screener,
	}
}

// CreateProfile validates the name, screens it against the word filter
// and creates the profile with a generated avatar name.
func (s *ProfileService) CreateProfile(name, avatarColor string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if err := utils.ValidateProfileName(name); err != nil {
		return nil, err
	}
	if err := utils.ValidateAvatarColor(avatarColor); err != nil {
		return nil, err
	}

	if s.screener != nil {
		blocked, err := s.screener.ScreenName(name)
		if err != nil {
			return nil, fmt.Errorf("failed to screen profile name: %w", err)
		}
		if len(blocked) > 0 {
			return nil, utils.ValidationError{Field: "name", Message: "name contains a blocked word"}
		}
	}

	avatarName, err := credentials.GenerateAvatarName()
	if err != nil {
		return nil, fmt.Errorf("failed to generate avatar name: %w", err)
	}

	return s.profiles.CreateProfile(name, avatarName, avatarColor)
}

// GetProfile returns one profile, nil when absent.
func (s *ProfileService) GetProfile(profileID string) (*models.Profile, error) {
	return s.profiles.GetProfileByID(profileID)
}

// ListProfiles returns every profile with its progression document, for
// the profile picker screen.
func (s *ProfileService) ListProfiles() ([]models.ProfileWithProgress, error) {
	profiles, err := s.profiles.GetAllProfiles()
	if err != nil {
		return nil, err
	}

	out := make([]models.ProfileWithProgress, 0, len(profiles))
	for _, profile := range profiles {
		state, err := s.progress.Snapshot(profile.ID)
		if err != nil {
			return nil, err
		}

		entry := models.ProfileWithProgress{
			Profile:    profile,
			TotalStars: state.Stars,
			StreakDays: state.Streak.Count,
			BadgeCount: len(state.Badges),
		}
		for _, world := range state.AdventureProgress {
			if world != nil {
				entry.CompletedLevels += len(world.CompletedLevelIDs)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// UpdateProfile renames a profile or changes its avatar color.
func (s *ProfileService) UpdateProfile(profileID, name, avatarColor string) error {
	name = strings.TrimSpace(name)
	if err := utils.ValidateProfileName(name); err != nil {
		return err
	}
	if err := utils.ValidateAvatarColor(avatarColor); err != nil {
		return err
	}

	if s.screener != nil {
		blocked, err := s.screener.ScreenName(name)
		if err != nil {
			return fmt.Errorf("failed to screen profile name: %w", err)
		}
		if len(blocked) > 0 {
			return utils.ValidationError{Field: "name", Message: "name contains a blocked word"}
		}
	}

	profile, err := s.profiles.GetProfileByID(profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", profileID)
	}

	return s.profiles.UpdateProfile(profileID, name, profile.AvatarName, avatarColor)
}

// DeleteProfile removes a profile and its progression document.
func (s *ProfileService) DeleteProfile(profileID string) error {
	return s.profiles.DeleteProfile(profileID)
}
