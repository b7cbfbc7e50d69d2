package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// BootstrapService creates the first admin account on an empty system.
type BootstrapService struct {
	Store store.Store
	Users *UserService
	Token string // pre-configured bootstrap token; empty disables bootstrap
}

type BootstrapInput struct {
	Username    string
	DisplayName string
	Password    string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, in BootstrapInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if s.Token == "" {
		return domain.User{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	admin, err := s.Users.newUser(RegisterInput{
		Username:    in.Username,
		DisplayName: in.DisplayName,
		Password:    in.Password,
		Role:        domain.RoleAdmin,
	})
	if err != nil {
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if errors.Is(err, ErrBootstrapAlready) {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, err
	}
	if err != nil {
		return domain.User{}, err
	}

	l.Info("system bootstrapped", "admin_id", admin.ID)
	return admin, nil
}
