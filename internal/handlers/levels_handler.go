package handlers

import (
	"net/http"
	"strconv"

	"tinyquest/internal/audio"
	"tinyquest/internal/levels"
	"tinyquest/internal/service"
)

// LevelsHandler serves the adventure map and individual levels
type LevelsHandler struct {
	progressService *service.ProgressService
	ttsService      *audio.TTSService
}

// NewLevelsHandler creates a new levels handler
func NewLevelsHandler(progressService *service.ProgressService, ttsService *audio.TTSService) *LevelsHandler {
	return &LevelsHandler{
		progressService: progressService,
		ttsService:      ttsService,
	}
}

// GetMap returns every level with the profile's unlock and star state
func (h *LevelsHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	state, err := h.progressService.Snapshot(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}
	world := state.World(levels.WorldID)

	view := MapView{
		WorldID:    levels.WorldID,
		Levels:     make([]LevelSummaryView, 0, levels.LevelCount),
		TotalStars: state.Stars,
		Streak:     state.Streak.Count,
	}
	for _, level := range levels.GetAllLevels() {
		view.Levels = append(view.Levels, newLevelSummaryView(level, world))
	}

	respondWithJSON(w, http.StatusOK, view)
}

// GetLevel returns one playable level with its questions. Locked levels
// are refused so the client cannot skip ahead.
func (h *LevelsHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	levelNum, err := strconv.Atoi(r.PathValue("num"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid level number", "", nil)
		return
	}

	level, ok := levels.GetLevel(levelNum)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Level not found", "", nil)
		return
	}

	state, err := h.progressService.Snapshot(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}
	if !levels.Unlocked(levelNum, state.World(levels.WorldID)) {
		respondWithError(w, http.StatusForbidden, "Level is locked", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, newLevelDetailView(level))
}

// WarmLevelAudio pre-generates prompt audio for a level and returns the
// prompt-to-filename mapping
func (h *LevelsHandler) WarmLevelAudio(w http.ResponseWriter, r *http.Request) {
	levelNum, err := strconv.Atoi(r.PathValue("num"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid level number", "", nil)
		return
	}

	level, ok := levels.GetLevel(levelNum)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Level not found", "", nil)
		return
	}

	files, err := h.ttsService.WarmLevel(r.Context(), level)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Audio generation failed", "tts warm failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"audio": files})
}
