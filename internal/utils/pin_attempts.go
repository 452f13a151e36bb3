package utils

import (
	"sync"
	"time"
)

// pinAttempts tracks failed gate attempts from one session
type pinAttempts struct {
	Failures    int
	WindowStart time.Time
}

// PINAttemptStore rate-limits parent gate attempts in memory. A kid
// mashing the keypad locks the gate for the window instead of brute
// forcing a 4-digit PIN.
type PINAttemptStore struct {
	attempts map[string]*pinAttempts
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

// NewPINAttemptStore creates a store allowing limit failures per window
func NewPINAttemptStore(limit int, window time.Duration) *PINAttemptStore {
	store := &PINAttemptStore{
		attempts: make(map[string]*pinAttempts),
		limit:    limit,
		window:   window,
	}
	// Start cleanup goroutine
	go store.cleanupExpired()
	return store
}

// Allowed reports whether the session may attempt the gate
func (s *PINAttemptStore) Allowed(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.attempts[sessionID]
	if !exists {
		return true
	}
	if time.Since(entry.WindowStart) > s.window {
		delete(s.attempts, sessionID)
		return true
	}
	return entry.Failures < s.limit
}

// RecordFailure counts a failed attempt against the session
func (s *PINAttemptStore) RecordFailure(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.attempts[sessionID]
	if !exists || time.Since(entry.WindowStart) > s.window {
		s.attempts[sessionID] = &pinAttempts{Failures: 1, WindowStart: time.Now()}
		return
	}
	entry.Failures++
}

// Clear forgets the session after a successful attempt
func (s *PINAttemptStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, sessionID)
}

// cleanupExpired removes stale entries periodically
func (s *PINAttemptStore) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for sessionID, entry := range s.attempts {
			if now.Sub(entry.WindowStart) > s.window {
				delete(s.attempts, sessionID)
			}
		}
		s.mu.Unlock()
	}
}
