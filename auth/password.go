package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/filmlist-go/apperror"
)

// bcrypt refuses inputs longer than 72 bytes instead of silently truncating
// them; that limit is surfaced to callers as a ValidationError.
const maxPasswordBytes = 72

// HashPassword turns a plaintext password into a self-contained bcrypt hash
// string encoding algorithm, per-hash salt, and cost.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperror.NewValidationError("password must be at most 72 bytes", err)
		}
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. The
// comparison happens inside bcrypt, which re-derives the hash and compares
// in constant time.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
