package models

// SchemaVersion is the current progression document schema. Stored with
// every persisted document so future releases can migrate old state.
const SchemaVersion = 1

// Streak tracks consecutive calendar days with at least one scored
// activity. LastActiveDate is an ISO date ("2006-01-02") or empty when
// no activity has been recorded yet.
type Streak struct {
	Count          int    `json:"count"`
	LastActiveDate string `json:"last_active_date,omitempty"`
}

// SubjectStats accumulates per-subject play statistics.
type SubjectStats struct {
	Sessions         int      `json:"sessions"`
	Stars            int      `json:"stars"`
	SecondsPlayed    int      `json:"seconds_played"`
	LastPlayedDate   string   `json:"last_played_date,omitempty"`
	CompletedItemIDs []string `json:"completed_item_ids,omitempty"`
}

// WorldProgress records adventure completion for one world.
// CompletedLevelIDs is an insertion-ordered set; LevelStars keeps the
// best star count earned per level (never decreases on replay).
type WorldProgress struct {
	CompletedLevelIDs []string       `json:"completed_level_ids"`
	LevelStars        map[string]int `json:"level_stars"`
}

// Completed reports whether the level id is in the completed set.
func (w *WorldProgress) Completed(levelID string) bool {
	if w == nil {
		return false
	}
	for _, id := range w.CompletedLevelIDs {
		if id == levelID {
			return true
		}
	}
	return false
}

// DailyUsage tracks screen time for the current day.
type DailyUsage struct {
	Date         string `json:"date"`
	SecondsToday int    `json:"seconds_today"`
}

// ParentGate holds the salted PIN credential. Both fields empty means
// no PIN has been set. The plaintext PIN is never stored.
type ParentGate struct {
	SaltHex    string `json:"salt_hex,omitempty"`
	PINHashHex string `json:"pin_hash_hex,omitempty"`
}

// IsSet reports whether a parent PIN has been configured.
func (g ParentGate) IsSet() bool {
	return g.SaltHex != "" && g.PINHashHex != ""
}

// ProgressState is the persisted per-profile progression document. It
// is owned exclusively by the progress store; all mutations go through
// the store's named operations.
type ProgressState struct {
	Version           int                       `json:"version"`
	Stars             int                       `json:"stars"`
	Badges            []string                  `json:"badges"`
	Streak            Streak                    `json:"streak"`
	PerSubjectStats   map[Subject]*SubjectStats `json:"per_subject_stats"`
	AdventureProgress map[string]*WorldProgress `json:"adventure_progress"`
	DailyUsage        DailyUsage                `json:"daily_usage"`
	FocusSubjects     []Subject                 `json:"focus_subjects,omitempty"`
	DailyLimitMinutes int                       `json:"daily_limit_minutes"`
	ParentGate        ParentGate                `json:"parent_gate"`
}

// HasBadge reports whether the badge has already been earned.
func (p *ProgressState) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// World returns the progress for a world, or nil if none exists yet.
func (p *ProgressState) World(worldID string) *WorldProgress {
	if p.AdventureProgress == nil {
		return nil
	}
	return p.AdventureProgress[worldID]
}

// FocusEnabled reports whether a subject is shown to the learner. An
// empty focus set means every subject is shown.
func (p *ProgressState) FocusEnabled(subject Subject) bool {
	if len(p.FocusSubjects) == 0 {
		return true
	}
	for _, s := range p.FocusSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
