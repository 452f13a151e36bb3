package progress

import (
	"fmt"

	"tinyquest/internal/models"
)

// Badge thresholds are re-checked on every AwardStars call. Badges are
// append-only and never duplicated, so re-evaluating is idempotent.

var starBadges = []struct {
	threshold int
	name      string
}{
	{1, "First Star"},
	{10, "Star Collector"},
	{50, "Superstar"},
	{100, "Champion"},
}

var streakBadges = []struct {
	threshold int
	name      string
}{
	{3, "3-day streak"},
	{7, "7-day streak"},
	{14, "14-day streak"},
}

// evaluateBadges appends any newly earned badges. Streak badges are
// only considered when the streak just advanced. Caller must hold s.mu.
func (s *Store) evaluateBadges(subject models.Subject, streakContinued bool) {
	for _, b := range starBadges {
		if s.state.Stars >= b.threshold {
			s.appendBadge(b.name)
		}
	}

	if stats := s.state.PerSubjectStats[subject]; stats != nil {
		if stats.Sessions >= 1 {
			s.appendBadge(fmt.Sprintf("First %s play", subject))
		}
		if stats.Sessions >= 10 {
			s.appendBadge(fmt.Sprintf("%s expert", subject))
		}
	}

	if streakContinued {
		for _, b := range streakBadges {
			if s.state.Streak.Count >= b.threshold {
				s.appendBadge(b.name)
			}
		}
	}
}

func (s *Store) appendBadge(name string) {
	if !s.state.HasBadge(name) {
		s.state.Badges = append(s.state.Badges, name)
	}
}
