package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GateClaims are the claims inside a parent gate token
type GateClaims struct {
	ProfileID string `json:"profile_id"`
	jwt.RegisteredClaims
}

// IssueGateToken signs a short-lived token proving the parent gate was
// passed for a profile
func IssueGateToken(secret, profileID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := GateClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tinyquest",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign gate token: %w", err)
	}
	return signed, nil
}

// ParseGateToken validates a gate token and returns the profile it was
// issued for
func ParseGateToken(secret, tokenString string) (string, error) {
	claims := &GateClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid gate token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid gate token")
	}
	return claims.ProfileID, nil
}
