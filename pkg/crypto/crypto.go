package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 100_000
)

// HashPassword menghasilkan stored form dari password dengan format:
// base64(salt) + "." + base64(derivedKey)
// Key diturunkan dengan PBKDF2-SHA256 (100.000 iterasi), salt acak 16 byte.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(salt) + "." + base64.StdEncoding.EncodeToString(key), nil
}

// VerifyPassword membandingkan password dengan stored form.
// Stored form yang rusak (delimiter salah, encoding tidak valid) selalu
// menghasilkan false, tidak pernah error ke pemanggil.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	// Perbandingan constant-time, bukan ==, untuk menghindari timing side-channel.
	return subtle.ConstantTimeCompare(key, expected) == 1
}
