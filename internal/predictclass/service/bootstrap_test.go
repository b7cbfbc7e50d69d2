package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &service.BootstrapService{
		Store: s,
		Users: &service.UserService{Store: s, Hasher: testHasher},
		Token: "let-me-in",
	}
	in := service.BootstrapInput{Username: "root", Password: "super secret admin"}

	done, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, done)

	_, err = svc.Bootstrap(ctx, "wrong", in)
	require.ErrorIs(t, err, service.ErrBootstrapUnauthorized)

	admin, err := svc.Bootstrap(ctx, "let-me-in", in)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	done, err = svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, done)

	_, err = svc.Bootstrap(ctx, "let-me-in", service.BootstrapInput{Username: "root2", Password: "super secret admin"})
	require.ErrorIs(t, err, service.ErrBootstrapAlready)
}

func TestBootstrapDisabledWithoutToken(t *testing.T) {
	s := newTestStore(t)
	svc := &service.BootstrapService{Store: s, Users: &service.UserService{Store: s, Hasher: testHasher}}

	_, err := svc.Bootstrap(context.Background(), "", service.BootstrapInput{Username: "root", Password: "super secret admin"})
	require.ErrorIs(t, err, service.ErrBootstrapDisabled)
}
