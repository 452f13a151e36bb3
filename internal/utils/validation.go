package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	pinRegex   = regexp.MustCompile(`^[0-9]{4,6}$`)
	colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePIN checks if a parent gate PIN is acceptable
func ValidatePIN(pin string) error {
	if pin == "" {
		return ValidationError{Field: "pin", Message: "pin is required"}
	}
	if !pinRegex.MatchString(pin) {
		return ValidationError{Field: "pin", Message: "pin must be 4 to 6 digits"}
	}
	return nil
}

// ValidateProfileName checks if a learner profile name is valid
func ValidateProfileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if len(name) > 30 {
		return ValidationError{Field: "name", Message: "name must be at most 30 characters"}
	}
	return nil
}

// ValidateAvatarColor checks if a color is a #rrggbb hex value
func ValidateAvatarColor(color string) error {
	if color == "" {
		return ValidationError{Field: "avatar_color", Message: "avatar color is required"}
	}
	if !colorRegex.MatchString(color) {
		return ValidationError{Field: "avatar_color", Message: "avatar color must be #rrggbb"}
	}
	return nil
}
