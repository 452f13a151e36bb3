package handlers

import (
	"net/http"
	"sync"
)

// StartupStatus tracks the initialization progress so the app can show
// a friendly loading screen while migrations and seeding run.
type StartupStatus struct {
	mu      sync.RWMutex
	Ready   bool
	Current string
	Steps   []StartupStep
}

type StartupStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

var startupStatus = &StartupStatus{
	Ready:   false,
	Current: "Initializing...",
	Steps: []StartupStep{
		{Name: "Database connection", Completed: false},
		{Name: "Running migrations", Completed: false},
		{Name: "Seeding name filter", Completed: false},
		{Name: "Initializing services", Completed: false},
		{Name: "Server ready", Completed: false},
	},
}

// SetCurrentStep updates the current initialization step
func SetCurrentStep(step string) {
	startupStatus.mu.Lock()
	defer startupStatus.mu.Unlock()
	startupStatus.Current = step
}

// CompleteStep marks a step as completed
func CompleteStep(stepName string) {
	startupStatus.mu.Lock()
	defer startupStatus.mu.Unlock()

	for i := range startupStatus.Steps {
		if startupStatus.Steps[i].Name == stepName {
			startupStatus.Steps[i].Completed = true
			break
		}
	}
}

// MarkReady marks the server as fully initialized
func MarkReady() {
	startupStatus.mu.Lock()
	defer startupStatus.mu.Unlock()
	startupStatus.Ready = true
	startupStatus.Current = "Server ready"
}

// IsReady returns whether the server is fully initialized
func IsReady() bool {
	startupStatus.mu.RLock()
	defer startupStatus.mu.RUnlock()
	return startupStatus.Ready
}

// Health reports readiness as JSON. The app polls this during startup.
func Health(w http.ResponseWriter, r *http.Request) {
	startupStatus.mu.RLock()
	defer startupStatus.mu.RUnlock()

	completed := 0
	for _, step := range startupStatus.Steps {
		if step.Completed {
			completed++
		}
	}

	status := http.StatusOK
	if !startupStatus.Ready {
		status = http.StatusServiceUnavailable
	}

	respondWithJSON(w, status, map[string]interface{}{
		"ready":    startupStatus.Ready,
		"current":  startupStatus.Current,
		"progress": (completed * 100) / len(startupStatus.Steps),
		"steps":    startupStatus.Steps,
	})
}
