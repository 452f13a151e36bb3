package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tinyquest/internal/service"
	"tinyquest/internal/utils"
)

// ProfileHandler serves the profile picker and profile management
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles returns every profile with a progress summary
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.ListProfiles()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to list profiles", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// CreateProfile adds a new learner profile
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		AvatarColor string `json:"avatar_color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	profile, err := h.profileService.CreateProfile(body.Name, body.AvatarColor)
	if err != nil {
		var validationErr utils.ValidationError
		if errors.As(err, &validationErr) {
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to create profile", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, profile)
}

// UpdateProfile renames a profile or changes its color
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	var body struct {
		Name        string `json:"name"`
		AvatarColor string `json:"avatar_color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := h.profileService.UpdateProfile(profile.ID, body.Name, body.AvatarColor); err != nil {
		var validationErr utils.ValidationError
		if errors.As(err, &validationErr) {
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update profile", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteProfile removes a profile and its progress. Parent gated.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	if err := h.profileService.DeleteProfile(profile.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to delete profile", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
