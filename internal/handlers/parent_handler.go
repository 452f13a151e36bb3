package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tinyquest/internal/models"
	"tinyquest/internal/repository"
	"tinyquest/internal/service"
	"tinyquest/internal/utils"
)

// ParentHandler serves the parent gate and the gated settings surface
type ParentHandler struct {
	parentService   *service.ParentService
	progressService *service.ProgressService
	settingsRepo    *repository.SettingsRepository
	attempts        *utils.PINAttemptStore
}

// NewParentHandler creates a new parent handler
func NewParentHandler(parentService *service.ParentService, progressService *service.ProgressService, settingsRepo *repository.SettingsRepository, attempts *utils.PINAttemptStore) *ParentHandler {
	return &ParentHandler{
		parentService:   parentService,
		progressService: progressService,
		settingsRepo:    settingsRepo,
		attempts:        attempts,
	}
}

// GateStatus reports whether a PIN exists for the profile
func (h *ParentHandler) GateStatus(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	hasPIN, err := h.parentService.HasPIN(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to read gate state", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"pin_set": hasPIN})
}

// SetPIN stores the first parent PIN for a profile. Changing an
// existing PIN goes through the gated route instead.
func (h *ParentHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	hasPIN, err := h.parentService.HasPIN(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to read gate state", err)
		return
	}
	if hasPIN {
		respondWithError(w, http.StatusForbidden, "PIN already set", "", nil)
		return
	}

	h.storePIN(w, r, profile.ID)
}

// ChangePIN replaces the PIN after the gate has been passed
func (h *ParentHandler) ChangePIN(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())
	h.storePIN(w, r, profile.ID)
}

func (h *ParentHandler) storePIN(w http.ResponseWriter, r *http.Request, profileID string) {
	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := h.parentService.SetPIN(profileID, body.PIN); err != nil {
		var validationErr utils.ValidationError
		if errors.As(err, &validationErr) {
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to set pin", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Unlock checks a PIN attempt and returns a gate token. Attempts are
// rate limited per profile.
func (h *ParentHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	if !h.attempts.Allowed(profile.ID) {
		respondWithError(w, http.StatusTooManyRequests, "Too many attempts, try again later", "", nil)
		return
	}

	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	token, err := h.parentService.Unlock(profile.ID, body.PIN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPINSet):
			respondWithError(w, http.StatusConflict, "No PIN set for this profile", "", nil)
		case errors.Is(err, service.ErrWrongPIN):
			h.attempts.RecordFailure(profile.ID)
			respondWithError(w, http.StatusUnauthorized, "Wrong PIN", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "gate unlock failed", err)
		}
		return
	}

	h.attempts.Clear(profile.ID)
	respondWithJSON(w, http.StatusOK, map[string]string{"gate_token": token})
}

// ToggleFocus flips a subject in the profile's focus set
func (h *ParentHandler) ToggleFocus(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	var body struct {
		Subject string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	subject := models.Subject(body.Subject)
	if !subject.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Unknown subject", "", nil)
		return
	}

	store, err := h.progressService.StoreFor(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}
	store.ToggleFocusSubject(subject)

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetDailyLimit updates the daily screen-time limit
func (h *ParentHandler) SetDailyLimit(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	var body struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if body.Minutes < 0 {
		respondWithError(w, http.StatusBadRequest, "Limit must not be negative", "", nil)
		return
	}

	store, err := h.progressService.StoreFor(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}
	store.SetDailyLimitMinutes(body.Minutes)

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResetProgress wipes the profile's progression (settings and the gate
// credential survive)
func (h *ParentHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	profile := GetProfileFromContext(r.Context())

	store, err := h.progressService.StoreFor(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load progress", err)
		return
	}
	store.ResetProgress()

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetReportSettings returns the weekly report configuration
func (h *ParentHandler) GetReportSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"email":   h.settingsRepo.ReportEmail(),
		"enabled": h.settingsRepo.IsWeeklyReportEnabled(),
	})
}

// SetReportSettings toggles the weekly report
func (h *ParentHandler) SetReportSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if body.Enabled && h.settingsRepo.ReportEmail() == "" {
		respondWithError(w, http.StatusConflict, "Link a parent account first", "", nil)
		return
	}

	if err := h.settingsRepo.SetWeeklyReportEnabled(body.Enabled); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to save setting", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
