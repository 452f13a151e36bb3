package progress

import (
	"testing"
	"time"

	"tinyquest/internal/models"
)

// fixedClock returns a clock pinned to the given ISO date.
func fixedClock(date string) func() time.Time {
	day, err := time.Parse(isoDate, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return day }
}

func TestAwardStarsAccumulates(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.AwardStars(models.SubjectLetters, 3)
	s.AwardStars(models.SubjectLetters, 2)
	s.AwardStars(models.SubjectMath, 1)

	state := s.Snapshot()
	if state.Stars != 6 {
		t.Errorf("total stars = %d, want 6", state.Stars)
	}
	letters := state.PerSubjectStats[models.SubjectLetters]
	if letters.Sessions != 2 || letters.Stars != 5 {
		t.Errorf("letters stats = %d sessions %d stars, want 2/5", letters.Sessions, letters.Stars)
	}
	if letters.LastPlayedDate != "2024-01-01" {
		t.Errorf("last played = %q, want 2024-01-01", letters.LastPlayedDate)
	}
	math := state.PerSubjectStats[models.SubjectMath]
	if math.Sessions != 1 || math.Stars != 1 {
		t.Errorf("math stats = %d sessions %d stars, want 1/1", math.Sessions, math.Stars)
	}
}

func TestAwardStarsClampsNegative(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.AwardStars(models.SubjectLetters, -5)

	state := s.Snapshot()
	if state.Stars != 0 {
		t.Errorf("total stars = %d, want 0", state.Stars)
	}
	// The session itself still counts even with a clamped star amount.
	if state.PerSubjectStats[models.SubjectLetters].Sessions != 1 {
		t.Errorf("sessions = %d, want 1", state.PerSubjectStats[models.SubjectLetters].Sessions)
	}
}

func TestBadgeIdempotence(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.AwardStars(models.SubjectLetters, 9)
	s.AwardStars(models.SubjectLetters, 1) // 9 -> 10 crosses the threshold
	s.AwardStars(models.SubjectLetters, 0) // re-evaluation must not duplicate

	state := s.Snapshot()
	count := 0
	for _, b := range state.Badges {
		if b == "Star Collector" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Star Collector appears %d times, want exactly 1", count)
	}
	if !state.HasBadge("First Star") {
		t.Error("First Star badge missing")
	}
	if !state.HasBadge("First letters play") {
		t.Error("First letters play badge missing")
	}
}

func TestSubjectExpertBadge(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	for i := 0; i < 10; i++ {
		s.AwardStars(models.SubjectShapes, 1)
	}

	snap := s.Snapshot()
	if !snap.HasBadge("shapes expert") {
		t.Error("shapes expert badge missing after 10 sessions")
	}
}

func TestRecordUsage(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.RecordUsage(5)
	s.RecordUsage(5)

	state := s.Snapshot()
	if state.DailyUsage.SecondsToday != 10 {
		t.Errorf("seconds today = %d, want 10", state.DailyUsage.SecondsToday)
	}
	if state.DailyUsage.Date != "2024-01-01" {
		t.Errorf("usage date = %q, want 2024-01-01", state.DailyUsage.Date)
	}
}

func TestRecordUsageResetsOnNewDay(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))
	s.RecordUsage(30)

	// Same store, next day.
	s.now = fixedClock("2024-01-02")
	s.RecordUsage(5)

	state := s.Snapshot()
	if state.DailyUsage.Date != "2024-01-02" {
		t.Errorf("usage date = %q, want 2024-01-02", state.DailyUsage.Date)
	}
	if state.DailyUsage.SecondsToday != 5 {
		t.Errorf("seconds today = %d, want 5", state.DailyUsage.SecondsToday)
	}
}

func TestRecordUsageClamps(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.RecordUsage(-10)
	if got := s.Snapshot().DailyUsage.SecondsToday; got != 0 {
		t.Errorf("after negative delta: %d, want 0", got)
	}

	s.RecordUsage(100000) // stalled timer firing with a huge backlog
	if got := s.Snapshot().DailyUsage.SecondsToday; got != maxUsageTickSeconds {
		t.Errorf("after oversized delta: %d, want %d", got, maxUsageTickSeconds)
	}
}

func TestCompleteAdventureLevelIdempotent(t *testing.T) {
	s := NewStore(nil)

	s.CompleteAdventureLevel("candy", "lv1", 2)
	s.CompleteAdventureLevel("candy", "lv1", 2)

	world := s.Snapshot().AdventureProgress["candy"]
	count := 0
	for _, id := range world.CompletedLevelIDs {
		if id == "lv1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("lv1 appears %d times in completed set, want 1", count)
	}
}

func TestCompleteAdventureLevelBestOf(t *testing.T) {
	s := NewStore(nil)

	s.CompleteAdventureLevel("candy", "lv1", 2)
	s.CompleteAdventureLevel("candy", "lv1", 1)

	world := s.Snapshot().AdventureProgress["candy"]
	if world.LevelStars["lv1"] != 2 {
		t.Errorf("level stars = %d, want 2 (best-of, never regresses)", world.LevelStars["lv1"])
	}

	s.CompleteAdventureLevel("candy", "lv1", 3)
	world = s.Snapshot().AdventureProgress["candy"]
	if world.LevelStars["lv1"] != 3 {
		t.Errorf("level stars = %d, want 3 after improvement", world.LevelStars["lv1"])
	}
}

func TestToggleFocusSubject(t *testing.T) {
	s := NewStore(nil)

	s.ToggleFocusSubject(models.SubjectArt)
	if state := s.Snapshot(); len(state.FocusSubjects) != 1 || state.FocusSubjects[0] != models.SubjectArt {
		t.Errorf("focus subjects = %v, want [art]", state.FocusSubjects)
	}

	s.ToggleFocusSubject(models.SubjectArt)
	if state := s.Snapshot(); len(state.FocusSubjects) != 0 {
		t.Errorf("focus subjects = %v, want empty after second toggle", state.FocusSubjects)
	}
}

func TestResetProgressScope(t *testing.T) {
	s := NewStore(nil, WithClock(fixedClock("2024-01-01")))

	s.AwardStars(models.SubjectLetters, 12)
	s.CompleteAdventureLevel("candy", "lv1", 3)
	s.ToggleFocusSubject(models.SubjectMath)
	s.SetDailyLimitMinutes(45)
	s.SetParentPin("abcd", "1234")

	s.ResetProgress()

	state := s.Snapshot()
	if state.Stars != 0 {
		t.Errorf("stars = %d, want 0", state.Stars)
	}
	if len(state.Badges) != 0 {
		t.Errorf("badges = %v, want empty", state.Badges)
	}
	if state.Streak.Count != 0 {
		t.Errorf("streak count = %d, want 0", state.Streak.Count)
	}
	if len(state.AdventureProgress) != 0 {
		t.Errorf("adventure progress = %v, want empty", state.AdventureProgress)
	}

	// Preserved: settings and the parent gate.
	if len(state.FocusSubjects) != 1 || state.FocusSubjects[0] != models.SubjectMath {
		t.Errorf("focus subjects = %v, want preserved [math]", state.FocusSubjects)
	}
	if state.DailyLimitMinutes != 45 {
		t.Errorf("daily limit = %d, want preserved 45", state.DailyLimitMinutes)
	}
	if !state.ParentGate.IsSet() {
		t.Error("parent gate cleared by reset, want preserved")
	}
}

func TestOnChangeNotifies(t *testing.T) {
	var calls int
	var lastStars int
	s := NewStore(nil, WithOnChange(func(state models.ProgressState) {
		calls++
		lastStars = state.Stars
	}))

	s.AwardStars(models.SubjectLetters, 2)
	s.RecordUsage(5)

	if calls != 2 {
		t.Errorf("onChange called %d times, want 2", calls)
	}
	if lastStars != 2 {
		t.Errorf("snapshot stars = %d, want 2", lastStars)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewStore(nil)
	s.CompleteAdventureLevel("candy", "lv1", 1)

	snap := s.Snapshot()
	snap.AdventureProgress["candy"].LevelStars["lv1"] = 99
	snap.Badges = append(snap.Badges, "forged")

	state := s.Snapshot()
	if state.AdventureProgress["candy"].LevelStars["lv1"] != 1 {
		t.Error("mutating a snapshot leaked into the store")
	}
	if state.HasBadge("forged") {
		t.Error("appending to a snapshot leaked into the store")
	}
}

func TestLoadedStateGetsDefaults(t *testing.T) {
	// Documents from older installs may miss maps entirely.
	s := NewStore(&models.ProgressState{Stars: 7})

	state := s.Snapshot()
	if state.PerSubjectStats[models.SubjectFeelings] == nil {
		t.Error("missing subject stats not repaired")
	}
	if state.Version != models.SchemaVersion {
		t.Errorf("version = %d, want %d", state.Version, models.SchemaVersion)
	}
	if state.Stars != 7 {
		t.Errorf("stars = %d, want 7 preserved", state.Stars)
	}
}
