package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"tinyquest/internal/repository"
)

// AccountLinkHandler runs the Google OAuth flow that links a parent
// email address for weekly reports. The app never has accounts of its
// own; the only thing kept from the flow is the verified email.
type AccountLinkHandler struct {
	config       *oauth2.Config
	settingsRepo *repository.SettingsRepository
}

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// NewAccountLinkHandler creates a new account link handler
func NewAccountLinkHandler(clientID, clientSecret, redirectURL string, settingsRepo *repository.SettingsRepository) *AccountLinkHandler {
	return &AccountLinkHandler{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
		settingsRepo: settingsRepo,
	}
}

// Enabled reports whether OAuth credentials are configured
func (h *AccountLinkHandler) Enabled() bool {
	return h.config.ClientID != "" && h.config.ClientSecret != ""
}

// Start initiates the Google OAuth flow
func (h *AccountLinkHandler) Start(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		respondWithError(w, http.StatusBadRequest, "Account linking not configured", "", nil)
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((10 * time.Minute).Seconds()),
	})

	authURL := h.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles the Google OAuth callback and stores the parent
// email
func (h *AccountLinkHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		respondWithError(w, http.StatusBadRequest, "Account linking not configured", "", nil)
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Missing authorization code", "", nil)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		respondWithError(w, http.StatusBadRequest, "Invalid OAuth state", "", nil)
		return
	}

	// Clear the state cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := h.config.Exchange(ctx, code)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to exchange OAuth code", "", err)
		return
	}

	email, err := fetchGoogleEmail(ctx, token)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to fetch account email", "", err)
		return
	}

	if err := h.settingsRepo.SetReportEmail(email); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to store report email", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"email": email})
}

// fetchGoogleEmail reads the verified email from the userinfo endpoint
func fetchGoogleEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch Google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status from Google user info: %d", resp.StatusCode)
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to parse Google user info: %w", err)
	}
	if payload.Email == "" {
		return "", fmt.Errorf("Google account has no email")
	}

	return payload.Email, nil
}
