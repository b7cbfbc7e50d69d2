package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/idx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
	Now    func() time.Time
}

type RegisterInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        domain.Role
}

// Register creates a teacher or student account.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if !in.Role.SelfRegisterable() {
		return domain.User{}, ErrInvalidRole
	}
	user, err := s.newUser(in)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// newUser validates in and hashes the password. The role is not checked.
func (s *UserService) newUser(in RegisterInput) (domain.User, error) {
	username := normalizeUsername(in.Username)
	if err := ValidateUsername(username); err != nil {
		return domain.User{}, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return domain.User{}, err
	}

	display := in.DisplayName
	if display == "" {
		display = username
	}
	display, err := validateText(display, 64, ErrInvalidDisplayName)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := clock(s.Now)
	return domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		DisplayName:  display,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}
