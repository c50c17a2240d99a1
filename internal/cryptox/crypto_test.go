package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	salt, hash := HashPassword([]byte("pw"))
	assert.Len(t, salt, SaltSize)
	assert.Len(t, hash, KeySize)

	assert.True(t, VerifyPassword([]byte("pw"), salt, hash))
	assert.False(t, VerifyPassword([]byte("pW"), salt, hash))
	assert.False(t, VerifyPassword([]byte("pw"), []byte("other-salt"), hash))

	salt2, hash2 := HashPassword([]byte("pw"))
	assert.NotEqual(t, salt, salt2)
	assert.NotEqual(t, hash, hash2)
}
