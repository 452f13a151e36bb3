package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tinyquest/internal/levels"
	"tinyquest/internal/models"
	"tinyquest/internal/security"
)

func TestNewLevelSummaryView(t *testing.T) {
	level, ok := levels.GetLevel(2)
	if !ok {
		t.Fatal("level 2 should exist")
	}

	t.Run("no progress yet", func(t *testing.T) {
		view := newLevelSummaryView(level, nil)

		if view.Number != 2 {
			t.Errorf("Number = %d, want 2", view.Number)
		}
		if view.Unlocked {
			t.Error("level 2 should be locked with no progress")
		}
		if view.Completed {
			t.Error("level 2 should not be completed")
		}
		if view.Stars != 0 {
			t.Errorf("Stars = %d, want 0", view.Stars)
		}
	})

	t.Run("previous level completed", func(t *testing.T) {
		world := &models.WorldProgress{
			CompletedLevelIDs: []string{models.LevelID(1)},
			LevelStars:        map[string]int{models.LevelID(1): 3},
		}
		view := newLevelSummaryView(level, world)

		if !view.Unlocked {
			t.Error("level 2 should be unlocked after level 1")
		}
		if view.Completed {
			t.Error("level 2 should not be completed yet")
		}
	})

	t.Run("completed level keeps best stars", func(t *testing.T) {
		world := &models.WorldProgress{
			CompletedLevelIDs: []string{models.LevelID(1), models.LevelID(2)},
			LevelStars:        map[string]int{models.LevelID(1): 3, models.LevelID(2): 2},
		}
		view := newLevelSummaryView(level, world)

		if !view.Completed {
			t.Error("level 2 should be completed")
		}
		if view.Stars != 2 {
			t.Errorf("Stars = %d, want 2", view.Stars)
		}
	})
}

func TestNewLevelDetailView(t *testing.T) {
	level, ok := levels.GetLevel(1)
	if !ok {
		t.Fatal("level 1 should exist")
	}

	view := newLevelDetailView(level)

	if view.ID != models.LevelID(1) {
		t.Errorf("ID = %q, want %q", view.ID, models.LevelID(1))
	}
	if len(view.Questions) == 0 {
		t.Error("detail view should carry the questions")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	m := NewMiddleware(nil, nil, security.NewRateLimiter(2, time.Minute))

	calls := 0
	handler := m.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/parent/gate/unlock", nil)
		req.RemoteAddr = "10.0.0.9:5000"
		handler(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, recorder.Code)
		}
	}

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/parent/gate/unlock", nil)
	req.RemoteAddr = "10.0.0.9:5000"
	handler(recorder, req)

	if recorder.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", recorder.Code)
	}
	if calls != 2 {
		t.Errorf("handler ran %d times, want 2", calls)
	}
}
