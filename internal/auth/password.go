package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters: interactive-login strength, ~40ms per derivation on
// commodity hardware. Stored hashes embed their salt, so parameters can be
// raised later without invalidating existing credentials at verify time.
const (
	scryptN    = 32768
	scryptR    = 8
	scryptP    = 1
	keyLength  = 64
	saltLength = 16
)

// HashPassword derives a scrypt key from the password under a fresh random
// salt and returns it as "salt:hexDerivedKey".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derived key from the supplied password and
// the stored salt, and compares in constant time. A constant-time compare is
// required here: credential comparison is the one timing-sensitive check in
// the system.
func VerifyPassword(storedHash, password string) bool {
	salt, expected, err := decodeHash(storedHash)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func decodeHash(storedHash string) (salt, key []byte, err error) {
	parts := strings.Split(storedHash, ":")
	if len(parts) != 2 {
		return nil, nil, errors.New("malformed credential hash")
	}
	salt, err = hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, err
	}
	key, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, err
	}
	return salt, key, nil
}
