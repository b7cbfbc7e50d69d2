package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper reads the pepper stored at path, generating and saving
// a new random one when the file does not exist yet.
func LoadOrCreatePepper(path string) (string, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err == nil {
		pepper := strings.TrimSpace(string(data))
		if pepper == "" {
			return "", fmt.Errorf("pepper file %s is empty", path)
		}
		return pepper, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(pepper), 0o600); err != nil {
		return "", err
	}
	return pepper, nil
}
