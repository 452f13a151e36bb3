package service

import (
	"testing"

	"tinyquest/internal/levels"
	"tinyquest/internal/models"
)

// fakePersister keeps documents in memory and counts saves.
type fakePersister struct {
	states map[string]models.ProgressState
	saves  int
}

func newFakePersister() *fakePersister {
	return &fakePersister{states: make(map[string]models.ProgressState)}
}

func (f *fakePersister) Load(profileID string) (*models.ProgressState, error) {
	state, ok := f.states[profileID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (f *fakePersister) Save(profileID string, state models.ProgressState) error {
	f.states[profileID] = state
	f.saves++
	return nil
}

func TestStoreForLoadsExistingDocument(t *testing.T) {
	persister := newFakePersister()
	persister.states["prof-1"] = models.ProgressState{Stars: 9}

	svc := NewProgressService(persister)
	store, err := svc.StoreFor("prof-1")
	if err != nil {
		t.Fatalf("StoreFor() error: %v", err)
	}

	if got := store.Snapshot().Stars; got != 9 {
		t.Errorf("loaded stars = %d, want 9", got)
	}
}

func TestStoreForReturnsSameStore(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	first, err := svc.StoreFor("prof-1")
	if err != nil {
		t.Fatalf("StoreFor() error: %v", err)
	}
	second, err := svc.StoreFor("prof-1")
	if err != nil {
		t.Fatalf("StoreFor() error: %v", err)
	}

	if first != second {
		t.Error("StoreFor returned different stores for the same profile")
	}
}

func TestCompleteLevelFirstLevel(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	result, err := svc.CompleteLevel("prof-1", 1, 3, 3)
	if err != nil {
		t.Fatalf("CompleteLevel() error: %v", err)
	}

	if result.Stars != 3 {
		t.Errorf("stars = %d, want 3 for a perfect run", result.Stars)
	}
	if result.LevelID != "lv1" {
		t.Errorf("level id = %q, want lv1", result.LevelID)
	}

	state, err := svc.Snapshot("prof-1")
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	world := state.World(levels.WorldID)
	if !world.Completed("lv1") {
		t.Error("lv1 not recorded as completed")
	}
	if state.Stars < 3 {
		t.Errorf("total stars = %d, want at least the 3 just earned", state.Stars)
	}
	if state.Streak.Count != 1 {
		t.Errorf("streak = %d, want 1 after first activity", state.Streak.Count)
	}
}

func TestCompleteLevelLockedLevel(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	if _, err := svc.CompleteLevel("prof-1", 5, 3, 3); err == nil {
		t.Error("completing a locked level succeeded, want error")
	}
}

func TestCompleteLevelUnknownLevel(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	if _, err := svc.CompleteLevel("prof-1", 999, 3, 3); err == nil {
		t.Error("completing level 999 succeeded, want error")
	}
}

func TestCompleteLevelUnlocksNext(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	if _, err := svc.CompleteLevel("prof-1", 1, 2, 3); err != nil {
		t.Fatalf("CompleteLevel(1) error: %v", err)
	}
	if _, err := svc.CompleteLevel("prof-1", 2, 2, 3); err != nil {
		t.Errorf("CompleteLevel(2) after finishing 1 failed: %v", err)
	}
	if _, err := svc.CompleteLevel("prof-1", 4, 2, 3); err == nil {
		t.Error("CompleteLevel(4) with 3 still locked succeeded, want error")
	}
}

func TestFlushPersistsPendingState(t *testing.T) {
	persister := newFakePersister()
	svc := NewProgressService(persister)

	if _, err := svc.CompleteLevel("prof-1", 1, 3, 3); err != nil {
		t.Fatalf("CompleteLevel() error: %v", err)
	}

	// The debounce window has not elapsed; Flush must write anyway.
	svc.Flush()

	saved, ok := persister.states["prof-1"]
	if !ok {
		t.Fatal("no document saved after Flush")
	}
	if !saved.World(levels.WorldID).Completed("lv1") {
		t.Error("saved document missing the completed level")
	}

	if persister.saves == 0 {
		t.Error("Save never called")
	}
}

func TestRecordUsageThroughService(t *testing.T) {
	svc := NewProgressService(newFakePersister())

	if err := svc.RecordUsage("prof-1", 30); err != nil {
		t.Fatalf("RecordUsage() error: %v", err)
	}

	state, err := svc.Snapshot("prof-1")
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if state.DailyUsage.SecondsToday != 30 {
		t.Errorf("seconds today = %d, want 30", state.DailyUsage.SecondsToday)
	}
}
