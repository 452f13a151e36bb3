package progress

import "time"

const isoDate = "2006-01-02"

// touchStreak updates the daily streak for activity happening now.
// Returns true when the streak count advanced (first day or a
// consecutive-day continuation), which is the only case streak badges
// are evaluated. Caller must hold s.mu.
func (s *Store) touchStreak() bool {
	today := s.today()
	last := s.state.Streak.LastActiveDate

	switch {
	case last == "":
		s.state.Streak.Count = 1
		s.state.Streak.LastActiveDate = today
		return true
	case last == today:
		// Already counted today; multiple plays in one day do not
		// inflate the streak.
		return false
	case isNextDay(last, today):
		s.state.Streak.Count++
		s.state.Streak.LastActiveDate = today
		return true
	default:
		// Gap of two or more days (or clock moved backwards): restart.
		s.state.Streak.Count = 1
		s.state.Streak.LastActiveDate = today
		return true
	}
}

// isNextDay reports whether b is exactly the calendar day after a.
func isNextDay(a, b string) bool {
	dayA, errA := time.Parse(isoDate, a)
	dayB, errB := time.Parse(isoDate, b)
	if errA != nil || errB != nil {
		return false
	}
	return dayA.AddDate(0, 0, 1).Equal(dayB)
}
