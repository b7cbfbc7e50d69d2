//go:build e2e

package predictclass_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
)

func TestClassroomGame(t *testing.T) {
	svc := setupService(t)
	client := predictsdk.NewSDKClient(svc.BaseURL)
	ctx := t.Context()

	teacher := signup(t, client, "tess", predictsdk.RoleTeacher)
	alice := signup(t, client, "alice", predictsdk.RoleStudent)
	bob := signup(t, client, "bob", predictsdk.RoleStudent)

	class, err := teacher.CreateClass(ctx, "Forecasting 101")
	require.NoError(t, err)
	require.Regexp(t, `^[A-Z0-9]{6}$`, class.JoinCode)

	for _, s := range []*predictsdk.Session{alice, bob} {
		joined, err := s.JoinClass(ctx, class.JoinCode)
		require.NoError(t, err)
		require.Equal(t, class.ID, joined.ID)
	}

	game, err := teacher.CreateGame(ctx, class.ID, "Will it rain tomorrow?")
	require.NoError(t, err)
	require.Nil(t, game.ResolvedAt)

	_, err = alice.SubmitPrediction(ctx, game.ID, "yes", 1.5)
	assertAPIError(t, err, http.StatusBadRequest, predictsdk.ErrorCodeInvalidConfidence)

	_, err = alice.SubmitPrediction(ctx, game.ID, "yes", 0.05)
	require.NoError(t, err)
	_, err = bob.SubmitPrediction(ctx, game.ID, "no", 0.9)
	require.NoError(t, err)

	res, err := teacher.ResolveGame(ctx, game.ID, "YES")
	require.NoError(t, err)
	require.NotNil(t, res.Game.ResolvedAt)

	points := map[string]int{}
	for _, p := range res.Predictions {
		points[p.StudentID] = *p.Points
	}
	require.Equal(t, 11, points[alice.UserID()])
	require.Equal(t, 0, points[bob.UserID()])

	_, err = teacher.ResolveGame(ctx, game.ID, "no")
	assertAPIError(t, err, http.StatusConflict, predictsdk.ErrorCodeConflict)

	board, err := bob.Leaderboard(ctx, class.ID)
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	require.Equal(t, alice.UserID(), board.Entries[0].StudentID)
	require.Equal(t, 11, board.Entries[0].Points)
}

func TestRoleBoundaries(t *testing.T) {
	svc := setupService(t)
	client := predictsdk.NewSDKClient(svc.BaseURL)
	ctx := t.Context()

	admin := bootstrapAdmin(t, client)
	teacher := signup(t, client, "tess", predictsdk.RoleTeacher)
	student := signup(t, client, "sam", predictsdk.RoleStudent)

	_, err := student.CreateClass(ctx, "Nope")
	assertAPIError(t, err, http.StatusForbidden, predictsdk.ErrorCodeForbidden)

	// admin does not imply teacher
	_, err = admin.CreateClass(ctx, "Nope")
	assertAPIError(t, err, http.StatusForbidden, predictsdk.ErrorCodeForbidden)

	class, err := teacher.CreateClass(ctx, "Science")
	require.NoError(t, err)

	_, err = teacher.JoinClass(ctx, class.JoinCode)
	assertAPIError(t, err, http.StatusForbidden, predictsdk.ErrorCodeForbidden)

	_, err = student.GetClass(ctx, class.ID)
	assertAPIError(t, err, http.StatusForbidden, predictsdk.ErrorCodeForbidden)

	_, err = teacher.ListAllClasses(ctx)
	assertAPIError(t, err, http.StatusForbidden, predictsdk.ErrorCodeForbidden)

	all, err := admin.ListAllClasses(ctx)
	require.NoError(t, err)
	require.Len(t, all.Classes, 1)

	_, err = client.NewSession("not-a-jwt").Me(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, predictsdk.ErrorCodeUnauthorized)

	me, err := client.NewSession(student.Token()).Me(ctx)
	require.NoError(t, err)
	require.Equal(t, predictsdk.RoleStudent, me.Role)
}
