package service

import (
	"errors"
	"fmt"
	"time"

	"tinyquest/internal/credentials"
	"tinyquest/internal/utils"
)

// ErrNoPINSet is returned when the gate is opened before a PIN exists.
var ErrNoPINSet = errors.New("no parent pin set")

// ErrWrongPIN is returned for a failed gate attempt.
var ErrWrongPIN = errors.New("wrong pin")

// ParentService owns the parent gate: PIN lifecycle and short-lived
// gate tokens that authorize the settings surface.
type ParentService struct {
	progress    *ProgressService
	tokenSecret string
	tokenTTL    time.Duration
}

// NewParentService creates a new parent service
func NewParentService(progress *ProgressService, tokenSecret string, tokenTTL time.Duration) *ParentService {
	return &ParentService{
		progress:    progress,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

// SetPIN validates and stores a new parent PIN for a profile. When a
// PIN already exists the caller must have passed the gate first; the
// handler enforces that with a gate token.
func (s *ParentService) SetPIN(profileID, pin string) error {
	if err := utils.ValidatePIN(pin); err != nil {
		return err
	}

	saltHex, hashHex, err := credentials.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	store, err := s.progress.StoreFor(profileID)
	if err != nil {
		return err
	}
	store.SetParentPin(saltHex, hashHex)
	return nil
}

// HasPIN reports whether the profile has a parent PIN configured.
func (s *ParentService) HasPIN(profileID string) (bool, error) {
	state, err := s.progress.Snapshot(profileID)
	if err != nil {
		return false, err
	}
	return state.ParentGate.IsSet(), nil
}

// Unlock checks a PIN attempt and returns a gate token on success.
func (s *ParentService) Unlock(profileID, pin string) (string, error) {
	state, err := s.progress.Snapshot(profileID)
	if err != nil {
		return "", err
	}
	if !state.ParentGate.IsSet() {
		return "", ErrNoPINSet
	}
	if !credentials.VerifyPIN(pin, state.ParentGate.SaltHex, state.ParentGate.PINHashHex) {
		return "", ErrWrongPIN
	}

	token, err := utils.IssueGateToken(s.tokenSecret, profileID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue gate token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a gate token and returns the profile it grants.
func (s *ParentService) VerifyToken(token string) (string, error) {
	return utils.ParseGateToken(s.tokenSecret, token)
}
