package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenRandomPassword produces the throwaway password assigned to accounts
// auto-registered through the OAuth bind flow. The user never sees it; they
// authenticate via the provider.
func GenRandomPassword() (string, error) {
	return GenerateSecureRandomString(16)
}
