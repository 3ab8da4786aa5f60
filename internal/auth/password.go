// Package auth implements the credential hasher, the signed session token
// issuer/verifier, and the session cookie codec.
package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt cost factor. Fixed at 10 rounds, which keeps
// CheckPassword latency acceptable under concurrent logins.
const HashCost = 10

// HashPassword hashes a plaintext password with a random per-call salt.
// The plaintext is never logged or returned.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
