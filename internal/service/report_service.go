package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tinyquest/internal/models"
	"tinyquest/internal/repository"
)

// ProfileLister returns every learner profile.
type ProfileLister interface {
	GetAllProfiles() ([]models.Profile, error)
}

// StatesLoader returns every stored progression document by profile ID.
type StatesLoader interface {
	LoadAll() (map[string]models.ProgressState, error)
}

// ReportService builds and sends the weekly progress email to the
// linked parent address.
type ReportService struct {
	profiles ProfileLister
	states   StatesLoader
	settings *repository.SettingsRepository
	email    *EmailService
}

// NewReportService creates a new report service
func NewReportService(profiles ProfileLister, states StatesLoader, settings *repository.SettingsRepository, email *EmailService) *ReportService {
	return &ReportService{
		profiles: profiles,
		states:   states,
		settings: settings,
		email:    email,
	}
}

// SendWeeklyReport sends one report covering all profiles. No-op when
// reports are disabled or no parent email is linked.
func (s *ReportService) SendWeeklyReport(ctx context.Context) error {
	if !s.settings.IsWeeklyReportEnabled() {
		log.Println("Weekly report skipped: disabled")
		return nil
	}
	toEmail := s.settings.ReportEmail()
	if toEmail == "" {
		log.Println("Weekly report skipped: no parent email linked")
		return nil
	}

	profiles, err := s.profiles.GetAllProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	states, err := s.states.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load progress states: %w", err)
	}

	subject, htmlBody, textBody := buildWeeklyReport(profiles, states, time.Now())
	return s.email.SendWeeklyReport(ctx, toEmail, subject, htmlBody, textBody)
}

// profileSummary is one profile's section of the report.
type profileSummary struct {
	Name            string
	Stars           int
	StreakCount     int
	Badges          int
	LevelsCompleted int
	TopSubject      string
}

// buildWeeklyReport renders the report subject and bodies.
func buildWeeklyReport(profiles []models.Profile, states map[string]models.ProgressState, now time.Time) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("TinyQuest weekly report - %s", now.Format("2 Jan 2006"))

	summaries := make([]profileSummary, 0, len(profiles))
	for _, profile := range profiles {
		state, ok := states[profile.ID]
		if !ok {
			summaries = append(summaries, profileSummary{Name: profile.Name})
			continue
		}
		summaries = append(summaries, summarizeProfile(profile.Name, state))
	}

	var html strings.Builder
	html.WriteString(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #ff9f43; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.profile { border-bottom: 1px solid #ddd; padding: 10px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>This Week in TinyQuest</h1>
		</div>
		<div class="content">
`)

	var text strings.Builder
	text.WriteString("This Week in TinyQuest\n\n")

	for _, s := range summaries {
		html.WriteString(fmt.Sprintf(`			<div class="profile">
				<h2>%s</h2>
				<p>⭐ %d stars total · 🔥 %d day streak · 🏅 %d badges</p>
				<p>Adventure levels completed: %d</p>
				<p>Favourite subject: %s</p>
			</div>
`, s.Name, s.Stars, s.StreakCount, s.Badges, s.LevelsCompleted, s.TopSubject))

		text.WriteString(fmt.Sprintf("%s\n  Stars: %d\n  Streak: %d days\n  Badges: %d\n  Levels completed: %d\n  Favourite subject: %s\n\n",
			s.Name, s.Stars, s.StreakCount, s.Badges, s.LevelsCompleted, s.TopSubject))
	}

	html.WriteString(`		</div>
		<div class="footer">
			<p>This is an automated email from TinyQuest. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`)
	text.WriteString("---\nThis is an automated email from TinyQuest. Please do not reply.\n")

	return subject, html.String(), text.String()
}

// summarizeProfile condenses a progression document into report lines.
func summarizeProfile(name string, state models.ProgressState) profileSummary {
	summary := profileSummary{
		Name:        name,
		Stars:       state.Stars,
		StreakCount: state.Streak.Count,
		Badges:      len(state.Badges),
		TopSubject:  "-",
	}

	for _, world := range state.AdventureProgress {
		if world != nil {
			summary.LevelsCompleted += len(world.CompletedLevelIDs)
		}
	}

	topSessions := 0
	for subject, stats := range state.PerSubjectStats {
		if stats != nil && stats.Sessions > topSessions {
			topSessions = stats.Sessions
			summary.TopSubject = string(subject)
		}
	}

	return summary
}
