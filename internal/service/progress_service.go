package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"tinyquest/internal/levels"
	"tinyquest/internal/models"
	"tinyquest/internal/progress"
)

// ProgressPersister loads and saves progression documents. Implemented
// by repository.ProgressRepository; tests use an in-memory fake.
type ProgressPersister interface {
	Load(profileID string) (*models.ProgressState, error)
	Save(profileID string, state models.ProgressState) error
}

// saveDebounce batches the save triggered by each mutation. A play
// session mutates the document several times per minute; one write per
// window is plenty for a local database.
const saveDebounce = 2 * time.Second

// ProgressService owns one progress.Store per learner profile, loading
// documents on first use and persisting them after mutations.
type ProgressService struct {
	persister ProgressPersister

	mu     sync.Mutex
	stores map[string]*progress.Store
	timers map[string]*time.Timer
	dirty  map[string]models.ProgressState
}

// NewProgressService creates a new progress service
func NewProgressService(persister ProgressPersister) *ProgressService {
	return &ProgressService{
		persister: persister,
		stores:    make(map[string]*progress.Store),
		timers:    make(map[string]*time.Timer),
		dirty:     make(map[string]models.ProgressState),
	}
}

// StoreFor returns the store for a profile, loading its document from
// the persister on first use.
func (s *ProgressService) StoreFor(profileID string) (*progress.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[profileID]; ok {
		return store, nil
	}

	state, err := s.persister.Load(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress for %s: %w", profileID, err)
	}

	store := progress.NewStore(state, progress.WithOnChange(func(snapshot models.ProgressState) {
		s.scheduleSave(profileID, snapshot)
	}))
	s.stores[profileID] = store
	return store, nil
}

// scheduleSave records the latest snapshot and arms the debounce timer.
func (s *ProgressService) scheduleSave(profileID string, snapshot models.ProgressState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty[profileID] = snapshot
	if _, armed := s.timers[profileID]; armed {
		return
	}
	s.timers[profileID] = time.AfterFunc(saveDebounce, func() {
		s.flushProfile(profileID)
	})
}

// flushProfile writes the latest snapshot for one profile.
func (s *ProgressService) flushProfile(profileID string) {
	s.mu.Lock()
	snapshot, pending := s.dirty[profileID]
	delete(s.dirty, profileID)
	delete(s.timers, profileID)
	s.mu.Unlock()

	if !pending {
		return
	}
	if err := s.persister.Save(profileID, snapshot); err != nil {
		log.Printf("Failed to save progress for %s: %v", profileID, err)
	}
}

// Flush writes every pending snapshot immediately, used on shutdown.
func (s *ProgressService) Flush() {
	s.mu.Lock()
	pending := make(map[string]models.ProgressState, len(s.dirty))
	for profileID, snapshot := range s.dirty {
		pending[profileID] = snapshot
	}
	s.dirty = make(map[string]models.ProgressState)
	for profileID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, profileID)
	}
	s.mu.Unlock()

	for profileID, snapshot := range pending {
		if err := s.persister.Save(profileID, snapshot); err != nil {
			log.Printf("Failed to save progress for %s: %v", profileID, err)
		}
	}
}

// CompletionResult is what the map screen needs after a level finishes.
type CompletionResult struct {
	LevelID     string        `json:"level_id"`
	Stars       int           `json:"stars"`
	Reward      models.Reward `json:"reward"`
	TotalStars  int           `json:"total_stars"`
	StreakCount int           `json:"streak_count"`
	Badges      []string      `json:"badges"`
}

// CompleteLevel scores a finished level and applies the outcome to the
// profile's progression document: level completion with best-of stars,
// subject stats, streak and badges.
func (s *ProgressService) CompleteLevel(profileID string, levelNum, correct, total int) (*CompletionResult, error) {
	level, ok := levels.GetLevel(levelNum)
	if !ok {
		return nil, fmt.Errorf("level %d does not exist", levelNum)
	}

	store, err := s.StoreFor(profileID)
	if err != nil {
		return nil, err
	}

	before := store.Snapshot()
	if !levels.Unlocked(levelNum, before.World(levels.WorldID)) {
		return nil, fmt.Errorf("level %d is locked", levelNum)
	}

	stars := levels.StarsForOutcome(correct, total)
	store.CompleteAdventureLevel(levels.WorldID, level.ID, stars)
	store.AwardStars(level.Area, stars)

	state := store.Snapshot()
	return &CompletionResult{
		LevelID:     level.ID,
		Stars:       stars,
		Reward:      level.Reward,
		TotalStars:  state.Stars,
		StreakCount: state.Streak.Count,
		Badges:      state.Badges,
	}, nil
}

// RecordUsage forwards a screen-time tick to the profile's store.
func (s *ProgressService) RecordUsage(profileID string, seconds int) error {
	store, err := s.StoreFor(profileID)
	if err != nil {
		return err
	}
	store.RecordUsage(seconds)
	return nil
}

// Snapshot returns the profile's current progression document.
func (s *ProgressService) Snapshot(profileID string) (models.ProgressState, error) {
	store, err := s.StoreFor(profileID)
	if err != nil {
		return models.ProgressState{}, err
	}
	return store.Snapshot(), nil
}
