package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := &service.UserService{Store: newTestStore(t), Hasher: testHasher}

	u, err := svc.Register(ctx, service.RegisterInput{Username: "  Grace.H ", Password: "hunter2hunter2", Role: domain.RoleStudent})
	require.NoError(t, err)
	require.Equal(t, "grace.h", u.Username)
	require.Equal(t, "grace.h", u.DisplayName)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	got, err := svc.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)

	_, err = svc.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	tests := []struct {
		name string
		in   service.RegisterInput
		want error
	}{
		{"taken", service.RegisterInput{Username: "grace.h", Password: "hunter2hunter2", Role: domain.RoleTeacher}, service.ErrUsernameTaken},
		{"admin not allowed", service.RegisterInput{Username: "root", Password: "hunter2hunter2", Role: domain.RoleAdmin}, service.ErrInvalidRole},
		{"unknown role", service.RegisterInput{Username: "root", Password: "hunter2hunter2", Role: "parent"}, service.ErrInvalidRole},
		{"short username", service.RegisterInput{Username: "ab", Password: "hunter2hunter2", Role: domain.RoleStudent}, service.ErrInvalidUsername},
		{"bad characters", service.RegisterInput{Username: "a b c", Password: "hunter2hunter2", Role: domain.RoleStudent}, service.ErrInvalidUsername},
		{"short password", service.RegisterInput{Username: "abc", Password: "short", Role: domain.RoleStudent}, service.ErrWeakPassword},
		{"long display name", service.RegisterInput{Username: "abc", DisplayName: strings.Repeat("x", 65), Password: "hunter2hunter2", Role: domain.RoleStudent}, service.ErrInvalidDisplayName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
