package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tinyquest/internal/service"
)

// ProgressHandler serves the progression document and play outcomes
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress returns the profile's full progression document
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	state, err := h.progressService.Snapshot(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}

// CompleteLevel scores a finished level and returns the outcome
func (h *ProgressHandler) CompleteLevel(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	levelNum, err := strconv.Atoi(r.PathValue("num"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid level number", "", nil)
		return
	}

	var body struct {
		Correct int `json:"correct"`
		Total   int `json:"total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	result, err := h.progressService.CompleteLevel(profile.ID, levelNum, body.Correct, body.Total)
	if err != nil {
		respondWithError(w, http.StatusConflict, err.Error(), "level completion rejected", err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// RecordUsage adds a screen-time tick for the profile
func (h *ProgressHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	var body struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := h.progressService.RecordUsage(profile.ID, body.Seconds); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to record usage", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
