// Package progress owns the per-profile progression document: stars,
// badges, streak, per-subject statistics, adventure completion, daily
// usage and parent settings. All mutations go through the store's named
// operations so the invariants are enforced at a single chokepoint.
package progress

import (
	"sync"
	"time"

	"tinyquest/internal/models"
)

// maxUsageTickSeconds caps a single usage delta. A stalled timer that
// fires with a huge backlog must not count hours of screen time.
const maxUsageTickSeconds = 120

// DefaultDailyLimitMinutes is applied to fresh profiles.
const DefaultDailyLimitMinutes = 30

// Store is the single mutation authority for one learner's progression
// document. Operations are total: invalid numeric input is clamped, not
// rejected, because for a kids' app a crash is worse than a no-op.
type Store struct {
	mu       sync.Mutex
	state    models.ProgressState
	now      func() time.Time
	onChange func(models.ProgressState)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the store's clock, used by tests to pin dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithOnChange registers a callback invoked with a snapshot after every
// mutation. The host decides how and when to persist; the store itself
// performs no I/O.
func WithOnChange(fn func(models.ProgressState)) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates a store around an existing document, or a fresh
// default document when initial is nil.
func NewStore(initial *models.ProgressState, opts ...Option) *Store {
	s := &Store{now: time.Now}
	if initial != nil {
		s.state = *initial
	} else {
		s.state = DefaultState()
	}
	ensureDefaults(&s.state)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultState returns a zeroed progression document.
func DefaultState() models.ProgressState {
	state := models.ProgressState{
		Version:           models.SchemaVersion,
		Badges:            []string{},
		PerSubjectStats:   make(map[models.Subject]*models.SubjectStats, len(models.AllSubjects)),
		AdventureProgress: make(map[string]*models.WorldProgress),
		DailyLimitMinutes: DefaultDailyLimitMinutes,
	}
	for _, subject := range models.AllSubjects {
		state.PerSubjectStats[subject] = &models.SubjectStats{}
	}
	return state
}

// ensureDefaults repairs documents loaded from older installs that may
// miss maps or subject keys.
func ensureDefaults(state *models.ProgressState) {
	if state.Badges == nil {
		state.Badges = []string{}
	}
	if state.PerSubjectStats == nil {
		state.PerSubjectStats = make(map[models.Subject]*models.SubjectStats, len(models.AllSubjects))
	}
	for _, subject := range models.AllSubjects {
		if state.PerSubjectStats[subject] == nil {
			state.PerSubjectStats[subject] = &models.SubjectStats{}
		}
	}
	if state.AdventureProgress == nil {
		state.AdventureProgress = make(map[string]*models.WorldProgress)
	}
	if state.Version == 0 {
		state.Version = models.SchemaVersion
	}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() models.ProgressState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(cloneState(s.state))
	}
}

// AwardStars records a scored play session for a subject. Negative
// starsToAdd is clamped to zero. Atomically updates the total star
// count, the subject's stats, the daily streak, and any newly earned
// badges. Badge evaluation is idempotent.
func (s *Store) AwardStars(subject models.Subject, starsToAdd int) {
	if starsToAdd < 0 {
		starsToAdd = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Stars += starsToAdd

	stats := s.state.PerSubjectStats[subject]
	if stats == nil {
		stats = &models.SubjectStats{}
		s.state.PerSubjectStats[subject] = stats
	}
	stats.Sessions++
	stats.Stars += starsToAdd
	stats.LastPlayedDate = s.today()

	streakContinued := s.touchStreak()
	s.evaluateBadges(subject, streakContinued)

	s.notify()
}

// RecordUsage adds seconds to today's screen-time counter, resetting
// the counter when the stored date is not today. Negative deltas are
// clamped to zero and oversized deltas to maxUsageTickSeconds.
func (s *Store) RecordUsage(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > maxUsageTickSeconds {
		seconds = maxUsageTickSeconds
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	if s.state.DailyUsage.Date != today {
		s.state.DailyUsage = models.DailyUsage{Date: today, SecondsToday: seconds}
	} else {
		s.state.DailyUsage.SecondsToday += seconds
	}

	s.notify()
}

// CompleteAdventureLevel marks a level completed in a world and keeps
// the best star count earned for it. Re-completing is idempotent and
// stars never regress on replay.
func (s *Store) CompleteAdventureLevel(worldID, levelID string, starsEarned int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	world := s.state.AdventureProgress[worldID]
	if world == nil {
		world = &models.WorldProgress{LevelStars: make(map[string]int)}
		s.state.AdventureProgress[worldID] = world
	}
	if world.LevelStars == nil {
		world.LevelStars = make(map[string]int)
	}

	if !world.Completed(levelID) {
		world.CompletedLevelIDs = append(world.CompletedLevelIDs, levelID)
	}
	if starsEarned > world.LevelStars[levelID] {
		world.LevelStars[levelID] = starsEarned
	}

	s.notify()
}

// SetParentPin overwrites the stored PIN credential. The store never
// sees the plaintext PIN, only the salt and hash.
func (s *Store) SetParentPin(saltHex, pinHashHex string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ParentGate = models.ParentGate{SaltHex: saltHex, PINHashHex: pinHashHex}

	s.notify()
}

// ToggleFocusSubject adds the subject to the focus set if absent,
// removes it if present.
func (s *Store) ToggleFocusSubject(subject models.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.state.FocusSubjects {
		if existing == subject {
			s.state.FocusSubjects = append(s.state.FocusSubjects[:i], s.state.FocusSubjects[i+1:]...)
			s.notify()
			return
		}
	}
	s.state.FocusSubjects = append(s.state.FocusSubjects, subject)

	s.notify()
}

// SetDailyLimitMinutes overwrites the daily screen-time limit.
func (s *Store) SetDailyLimitMinutes(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DailyLimitMinutes = minutes

	s.notify()
}

// ResetProgress clears stars, badges, streak, per-subject stats,
// adventure completion and today's usage. Focus subjects, the daily
// limit and the parent gate credential are preserved: a reset is
// "progress only", not a full wipe.
func (s *Store) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := DefaultState()
	fresh.FocusSubjects = s.state.FocusSubjects
	fresh.DailyLimitMinutes = s.state.DailyLimitMinutes
	fresh.ParentGate = s.state.ParentGate
	fresh.DailyUsage = models.DailyUsage{Date: s.today(), SecondsToday: 0}
	s.state = fresh

	s.notify()
}

func cloneState(state models.ProgressState) models.ProgressState {
	out := state

	out.Badges = append([]string(nil), state.Badges...)
	out.FocusSubjects = append([]models.Subject(nil), state.FocusSubjects...)

	out.PerSubjectStats = make(map[models.Subject]*models.SubjectStats, len(state.PerSubjectStats))
	for subject, stats := range state.PerSubjectStats {
		copied := *stats
		copied.CompletedItemIDs = append([]string(nil), stats.CompletedItemIDs...)
		out.PerSubjectStats[subject] = &copied
	}

	out.AdventureProgress = make(map[string]*models.WorldProgress, len(state.AdventureProgress))
	for worldID, world := range state.AdventureProgress {
		copied := models.WorldProgress{
			CompletedLevelIDs: append([]string(nil), world.CompletedLevelIDs...),
			LevelStars:        make(map[string]int, len(world.LevelStars)),
		}
		for levelID, stars := range world.LevelStars {
			copied.LevelStars[levelID] = stars
		}
		out.AdventureProgress[worldID] = &copied
	}

	return out
}
