// Package cryptox hashes and verifies passwords for the dev backend.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/portal/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches password with salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// HashPassword returns a fresh random salt and the derived key for password.
func HashPassword(password []byte) (salt, hash []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, DeriveKey(password, salt)
}

// VerifyPassword reports whether candidate derives to hash under salt. The
// comparison runs in constant time.
func VerifyPassword(candidate, salt, hash []byte) bool {
	return subtle.ConstantTimeCompare(DeriveKey(candidate, salt), hash) == 1
}
