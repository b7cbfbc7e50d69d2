package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for new hashes. Verification reads them back out of
// the encoded hash so they can be raised later without a migration.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidHash      = errors.New("invalid hash format")
)

// PasswordHasher hashes and verifies passwords with Argon2id. The pepper is
// appended to every password and lives outside the database.
type PasswordHasher struct {
	Pepper string
}

// Hash returns a PHC encoded Argon2id hash with a fresh salt.
func (h PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	sum := argon2.IDKey([]byte(password+h.Pepper), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// Verify compares password against a PHC encoded hash in constant time.
func (h PasswordHasher) Verify(password, encoded string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return ErrInvalidHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalidHash, parts[2])
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return fmt.Errorf("%w: hash", ErrInvalidHash)
	}

	got := argon2.IDKey([]byte(password+h.Pepper), salt, iters, mem, par, uint32(len(want))) // #nosec G115

	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
