package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"tinyquest/internal/models"
	"tinyquest/internal/security"
	"tinyquest/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	ProfileContextKey ContextKey = "profile"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	profileService *service.ProfileService
	parentService  *service.ParentService
	rateLimiter    *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(profileService *service.ProfileService, parentService *service.ParentService, rateLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		profileService: profileService,
		parentService:  parentService,
		rateLimiter:    rateLimiter,
	}
}

// RateLimit throttles sensitive endpoints per client IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.rateLimiter.Allow(security.ClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests, try again later", "", nil)
			return
		}
		next(w, r)
	}
}

// RequireProfile resolves the X-Profile-ID header to a profile and puts
// it on the request context.
func (m *Middleware) RequireProfile(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := r.Header.Get(ProfileHeaderName)
		if profileID == "" {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "missing profile header", nil)
			return
		}

		profile, err := m.profileService.GetProfile(profileID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load profile", err)
			return
		}
		if profile == nil {
			respondWithError(w, http.StatusNotFound, ErrProfileNotFound, "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ProfileContextKey, profile)
		next(w, r.WithContext(ctx))
	}
}

// RequireParentGate requires a valid gate token for the profile on the
// request. Used by the settings surface so a kid cannot reach it.
func (m *Middleware) RequireParentGate(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireProfile(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(GateHeaderName)
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "missing gate token", nil)
			return
		}

		profile := GetProfileFromContext(r.Context())
		grantedProfile, err := m.parentService.VerifyToken(token)
		if err != nil || grantedProfile != profile.ID {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "invalid gate token", err)
			return
		}

		next(w, r)
	})
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetProfileFromContext retrieves the profile from the request context
func GetProfileFromContext(ctx context.Context) *models.Profile {
	profile, ok := ctx.Value(ProfileContextKey).(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
