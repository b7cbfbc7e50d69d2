// Package storetest is a conformance suite every store driver runs.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/idx"
)

// Factory returns a migrated, empty store. It should register its own
// cleanup.
type Factory func(t *testing.T) store.Store

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Run executes the whole suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Classes", func(t *testing.T) { testClasses(t, newStore(t)) })
	t.Run("GamesAndPredictions", func(t *testing.T) { testGames(t, newStore(t)) })
	t.Run("Leaderboard", func(t *testing.T) { testLeaderboard(t, newStore(t)) })
	t.Run("ResetTokens", func(t *testing.T) { testResetTokens(t, newStore(t)) })
	t.Run("ResetTokenConsumeRace", func(t *testing.T) { testConsumeRace(t, newStore(t)) })
	t.Run("WithTxRollback", func(t *testing.T) { testWithTx(t, newStore(t)) })
}

// MustUser inserts a user with the given role.
func MustUser(t *testing.T, s store.Store, username string, role domain.Role) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		DisplayName:  username,
		PasswordHash: "$argon2id$placeholder",
		Role:         role,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

// MustClass inserts a class owned by teacherID.
func MustClass(t *testing.T, s store.Store, teacherID, code string) domain.Class {
	t.Helper()
	c := domain.Class{
		ID:        idx.New().String(),
		Name:      "Class " + code,
		TeacherID: teacherID,
		JoinCode:  code,
		CreatedAt: base,
	}
	require.NoError(t, s.Classes().CreateClass(context.Background(), c))
	return c
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := MustUser(t, s, "ada", domain.RoleTeacher)

	empty, err = s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	got, err := s.Users().GetUserByUsername(ctx, "ada")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleTeacher, got.Role)
	require.True(t, base.Equal(got.CreatedAt))

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	later := base.Add(time.Hour)
	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$argon2id$new", later))
	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "$argon2id$new", got.PasswordHash)
	require.True(t, later.Equal(got.UpdatedAt))

	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, "missing", "x", later), store.ErrNotFound)
}

func testClasses(t *testing.T, s store.Store) {
	ctx := context.Background()
	teacher := MustUser(t, s, "tess", domain.RoleTeacher)
	student := MustUser(t, s, "sam", domain.RoleStudent)

	c := MustClass(t, s, teacher.ID, "ABC123")

	exists, err := s.Classes().JoinCodeExists(ctx, "ABC123")
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = s.Classes().JoinCodeExists(ctx, "ZZZ999")
	require.NoError(t, err)
	require.False(t, exists)

	clash := domain.Class{ID: idx.New().String(), Name: "Other", TeacherID: teacher.ID, JoinCode: "ABC123", CreatedAt: base}
	require.ErrorIs(t, s.Classes().CreateClass(ctx, clash), store.ErrAlreadyExists)

	got, err := s.Classes().GetClassByJoinCode(ctx, "ABC123")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)

	_, err = s.Classes().GetClassByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	second := domain.Class{ID: idx.New().String(), Name: "Second", TeacherID: teacher.ID, JoinCode: "XYZ789", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, s.Classes().CreateClass(ctx, second))

	all, err := s.Classes().ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID, "newest first")

	enrolled, err := s.Classes().IsEnrolled(ctx, c.ID, student.ID)
	require.NoError(t, err)
	require.False(t, enrolled)

	e := domain.Enrollment{ClassID: c.ID, StudentID: student.ID, JoinedAt: base}
	require.NoError(t, s.Classes().AddEnrollment(ctx, e))
	require.ErrorIs(t, s.Classes().AddEnrollment(ctx, e), store.ErrAlreadyExists)

	enrolled, err = s.Classes().IsEnrolled(ctx, c.ID, student.ID)
	require.NoError(t, err)
	require.True(t, enrolled)
}

func testGames(t *testing.T, s store.Store) {
	ctx := context.Background()
	teacher := MustUser(t, s, "tess", domain.RoleTeacher)
	student := MustUser(t, s, "sam", domain.RoleStudent)
	c := MustClass(t, s, teacher.ID, "GAME01")

	g := domain.Game{ID: idx.New().String(), ClassID: c.ID, Question: "Will it rain?", CreatedAt: base}
	require.NoError(t, s.Games().CreateGame(ctx, g))

	got, err := s.Games().GetGameByID(ctx, g.ID)
	require.NoError(t, err)
	require.False(t, got.Resolved())
	require.Nil(t, got.Outcome)

	p := domain.Prediction{ID: idx.New().String(), GameID: g.ID, StudentID: student.ID, Choice: "yes", Confidence: 0.75, CreatedAt: base}
	require.NoError(t, s.Predictions().CreatePrediction(ctx, p))

	again := p
	again.ID = idx.New().String()
	require.ErrorIs(t, s.Predictions().CreatePrediction(ctx, again), store.ErrAlreadyExists)

	require.NoError(t, s.Games().ResolveGame(ctx, g.ID, "yes", base.Add(time.Hour)))
	require.ErrorIs(t, s.Games().ResolveGame(ctx, g.ID, "no", base.Add(2*time.Hour)), store.ErrNotMatched)

	got, err = s.Games().GetGameByID(ctx, g.ID)
	require.NoError(t, err)
	require.True(t, got.Resolved())
	require.Equal(t, "yes", *got.Outcome)

	require.NoError(t, s.Predictions().ScorePrediction(ctx, p.ID, true, 18))
	require.ErrorIs(t, s.Predictions().ScorePrediction(ctx, p.ID, true, 18), store.ErrNotMatched)

	preds, err := s.Predictions().ListPredictionsByGame(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	require.InDelta(t, 0.75, preds[0].Confidence, 1e-9)
	require.NotNil(t, preds[0].IsCorrect)
	require.True(t, *preds[0].IsCorrect)
	require.Equal(t, 18, *preds[0].Points)

	games, err := s.Games().ListGamesByClass(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
}

func testLeaderboard(t *testing.T, s store.Store) {
	ctx := context.Background()
	teacher := MustUser(t, s, "tess", domain.RoleTeacher)
	alice := MustUser(t, s, "alice", domain.RoleStudent)
	bob := MustUser(t, s, "bob", domain.RoleStudent)
	carol := MustUser(t, s, "carol", domain.RoleStudent)
	c := MustClass(t, s, teacher.ID, "LEAD01")

	for _, u := range []domain.User{alice, bob, carol} {
		require.NoError(t, s.Classes().AddEnrollment(ctx, domain.Enrollment{ClassID: c.ID, StudentID: u.ID, JoinedAt: base}))
	}

	for i, score := range []struct {
		student string
		points  int
	}{{alice.ID, 15}, {bob.ID, 20}, {alice.ID, 12}} {
		g := domain.Game{ID: idx.New().String(), ClassID: c.ID, Question: "q", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, s.Games().CreateGame(ctx, g))
		p := domain.Prediction{ID: idx.New().String(), GameID: g.ID, StudentID: score.student, Choice: "a", Confidence: 0.5, CreatedAt: base}
		require.NoError(t, s.Predictions().CreatePrediction(ctx, p))
		require.NoError(t, s.Predictions().ScorePrediction(ctx, p.ID, true, score.points))
	}

	board, err := s.Classes().Leaderboard(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, board, 3)

	require.Equal(t, alice.ID, board[0].StudentID)
	require.Equal(t, 27, board[0].Points)
	require.Equal(t, 2, board[0].Predictions)
	require.Equal(t, bob.ID, board[1].StudentID)
	require.Equal(t, 20, board[1].Points)
	require.Equal(t, carol.ID, board[2].StudentID)
	require.Equal(t, 0, board[2].Points)
	require.Equal(t, 0, board[2].Predictions)
}

func newResetToken(ownerID, hash string, expires time.Time) domain.ResetToken {
	return domain.ResetToken{
		ID:        idx.New().String(),
		TokenHash: hash,
		OwnerID:   ownerID,
		ExpiresAt: expires,
		CreatedAt: expires.Add(-time.Hour),
	}
}

func testResetTokens(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := MustUser(t, s, "rita", domain.RoleStudent)
	expires := base.Add(time.Hour)

	tok := newResetToken(u.ID, "hash-a", expires)
	require.NoError(t, s.ResetTokens().CreateResetToken(ctx, tok))

	got, err := s.ResetTokens().GetResetTokenByHash(ctx, "hash-a")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.OwnerID)
	require.True(t, expires.Equal(got.ExpiresAt))
	require.False(t, got.Consumed())

	_, err = s.ResetTokens().GetResetTokenByHash(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("consume exactly at expiry", func(t *testing.T) {
		consumed, err := s.ResetTokens().ConsumeResetToken(ctx, "hash-a", expires)
		require.NoError(t, err)
		require.True(t, consumed.Consumed())
		require.True(t, expires.Equal(*consumed.ConsumedAt))

		_, err = s.ResetTokens().ConsumeResetToken(ctx, "hash-a", expires)
		require.ErrorIs(t, err, store.ErrNotMatched)
	})

	t.Run("one nanosecond late", func(t *testing.T) {
		require.NoError(t, s.ResetTokens().CreateResetToken(ctx, newResetToken(u.ID, "hash-b", expires)))

		_, err := s.ResetTokens().ConsumeResetToken(ctx, "hash-b", expires.Add(time.Nanosecond))
		require.ErrorIs(t, err, store.ErrNotMatched)

		still, err := s.ResetTokens().GetResetTokenByHash(ctx, "hash-b")
		require.NoError(t, err)
		require.False(t, still.Consumed())
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := s.ResetTokens().ConsumeResetToken(ctx, "unknown", base)
		require.ErrorIs(t, err, store.ErrNotMatched)
	})

	t.Run("delete expired", func(t *testing.T) {
		require.NoError(t, s.ResetTokens().CreateResetToken(ctx, newResetToken(u.ID, "hash-c", expires.Add(time.Hour))))

		n, err := s.ResetTokens().DeleteExpiredResetTokens(ctx, expires.Add(time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		_, err = s.ResetTokens().GetResetTokenByHash(ctx, "hash-c")
		require.NoError(t, err)
	})
}

func testConsumeRace(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := MustUser(t, s, "racer", domain.RoleStudent)
	require.NoError(t, s.ResetTokens().CreateResetToken(ctx, newResetToken(u.ID, "race", base.Add(time.Hour))))

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		misses  int
		unknown []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ResetTokens().ConsumeResetToken(ctx, "race", base)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, store.ErrNotMatched):
				misses++
			default:
				unknown = append(unknown, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, unknown)
	require.Equal(t, 1, wins)
	require.Equal(t, workers-1, misses)
}

func testWithTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		MustUser(t, tx, "ghost", domain.RoleStudent)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		MustUser(t, tx, "kept", domain.RoleStudent)
		return nil
	}))
	_, err = s.Users().GetUserByUsername(ctx, "kept")
	require.NoError(t, err)
}
