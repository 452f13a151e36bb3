package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pinSaltBytes  = 16
	pinIterations = 100_000
	pinKeyLength  = 32
)

// HashPIN derives a salted hash of a parent PIN. Returns hex-encoded
// salt and hash for storage in the progression document.
func HashPIN(pin string) (saltHex, hashHex string, err error) {
	salt := make([]byte, pinSaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(pin), salt, pinIterations, pinKeyLength, sha256.New)
	return hex.EncodeToString(salt), hex.EncodeToString(hash), nil
}

// VerifyPIN checks a PIN attempt against the stored salt and hash.
func VerifyPIN(pin, saltHex, hashHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	hash := pbkdf2.Key([]byte(pin), salt, pinIterations, pinKeyLength, sha256.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}
