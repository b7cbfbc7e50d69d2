package httpx

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// DefaultSessionCookieName is used when no name is configured.
const DefaultSessionCookieName = "predictclass_session"

var ErrNoSessionCookie = errors.New("httpx: no session cookie")

// SessionCookies carries a session token in a securecookie-signed cookie.
// Decoding also rejects envelopes older than maxAge.
type SessionCookies struct {
	name   string
	secure bool
	maxAge time.Duration
	codec  *securecookie.SecureCookie
}

// NewSessionCookies builds a cookie codec. hashKey should be at least 32
// bytes; secure controls the Secure attribute (off for plain-http dev).
func NewSessionCookies(name string, hashKey []byte, maxAge time.Duration, secure bool) *SessionCookies {
	if name == "" {
		name = DefaultSessionCookieName
	}

	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(maxAge.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &SessionCookies{name: name, secure: secure, maxAge: maxAge, codec: codec}
}

// Name returns the cookie name.
func (s *SessionCookies) Name() string { return s.name }

// Set writes token as the session cookie.
func (s *SessionCookies) Set(w http.ResponseWriter, token string) error {
	encoded, err := s.codec.Encode(s.name, token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the token from the session cookie. ErrNoSessionCookie means
// the cookie is absent; any other error means it failed verification.
func (s *SessionCookies) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(s.name)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	var token string
	if err := s.codec.Decode(s.name, c.Value, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Clear expires the session cookie on the client.
func (s *SessionCookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
