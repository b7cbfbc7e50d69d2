package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// SessionService mints signed session tokens. Sessions are never stored;
// a token is good until its exp claim.
type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer
	Hasher cryptox.PasswordHasher
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// Session is a freshly issued token and what it asserts.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
}

// Issue signs a token for id.
func (s *SessionService) Issue(id domain.Identity) (Session, error) {
	if id.SubjectID == "" || !id.Role.Valid() {
		return Session{}, fmt.Errorf("issue session: %w", ErrInvalidRole)
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(id.SubjectID, id.Role.String(), ttl, s.Issuer, clock(s.Now))
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}

	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, Identity: id}, nil
}

// Login checks a username and password and issues a session.
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, store.ErrNotFound) {
		log.Info("login for unknown user")
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login with wrong password", "user_id", user.ID)
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	sess, err := s.Issue(domain.Identity{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		return Session{}, err
	}

	log.Info("session issued", "user_id", user.ID, "role", user.Role)
	return sess, nil
}
