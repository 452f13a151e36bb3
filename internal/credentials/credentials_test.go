package credentials

import (
	"strings"
	"testing"
)

func TestGenerateAvatarName(t *testing.T) {
	for i := 0; i < 100; i++ {
		name, err := GenerateAvatarName()
		if err != nil {
			t.Fatalf("GenerateAvatarName() error: %v", err)
		}

		parts := strings.Split(name, " ")
		if len(parts) != 2 {
			t.Fatalf("avatar name %q not in 'Adjective Animal' form", name)
		}
		if !contains(adjectives, parts[0]) {
			t.Errorf("adjective %q not from the word list", parts[0])
		}
		if !contains(animals, parts[1]) {
			t.Errorf("animal %q not from the word list", parts[1])
		}
	}
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

func TestHashAndVerifyPIN(t *testing.T) {
	saltHex, hashHex, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error: %v", err)
	}

	if len(saltHex) != pinSaltBytes*2 {
		t.Errorf("salt hex length = %d, want %d", len(saltHex), pinSaltBytes*2)
	}
	if len(hashHex) != pinKeyLength*2 {
		t.Errorf("hash hex length = %d, want %d", len(hashHex), pinKeyLength*2)
	}

	if !VerifyPIN("1234", saltHex, hashHex) {
		t.Error("correct PIN rejected")
	}
	if VerifyPIN("4321", saltHex, hashHex) {
		t.Error("wrong PIN accepted")
	}
}

func TestHashPINUniqueSalts(t *testing.T) {
	salt1, hash1, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error: %v", err)
	}
	salt2, hash2, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error: %v", err)
	}

	if salt1 == salt2 {
		t.Error("two hashes of the same PIN share a salt")
	}
	if hash1 == hash2 {
		t.Error("two hashes of the same PIN are identical")
	}
}

func TestVerifyPINBadEncoding(t *testing.T) {
	if VerifyPIN("1234", "not-hex", "also-not-hex") {
		t.Error("VerifyPIN accepted malformed stored credential")
	}
}
