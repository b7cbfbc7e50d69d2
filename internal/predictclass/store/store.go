package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrNotMatched is returned by conditional updates whose guard matched no
	// row. Callers re-read to find out why.
	ErrNotMatched = errors.New("store: conditional update matched no rows")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a transaction can hand out
// the same repos bound to the tx.
type Store interface {
	Users() Users
	Classes() Classes
	Games() Games
	Predictions() Predictions
	ResetTokens() ResetTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use tx, never the outer store.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdatePasswordHash(ctx context.Context, userID, hash string, at time.Time) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Classes interface {
	// CreateClass returns ErrAlreadyExists when the join code or id is taken.
	CreateClass(ctx context.Context, c domain.Class) error

	GetClassByID(ctx context.Context, id string) (domain.Class, error)
	GetClassByJoinCode(ctx context.Context, code string) (domain.Class, error)
	JoinCodeExists(ctx context.Context, code string) (bool, error)

	// ListClasses returns every class, newest first.
	ListClasses(ctx context.Context) ([]domain.Class, error)

	// AddEnrollment returns ErrAlreadyExists when the student is already in
	// the class.
	AddEnrollment(ctx context.Context, e domain.Enrollment) error
	IsEnrolled(ctx context.Context, classID, studentID string) (bool, error)

	// Leaderboard sums scored points per enrolled student, highest first.
	Leaderboard(ctx context.Context, classID string) ([]domain.LeaderboardEntry, error)
}

type Games interface {
	CreateGame(ctx context.Context, g domain.Game) error
	GetGameByID(ctx context.Context, id string) (domain.Game, error)
	ListGamesByClass(ctx context.Context, classID string) ([]domain.Game, error)

	// ResolveGame records the outcome only if the game is still open.
	// Returns ErrNotMatched otherwise.
	ResolveGame(ctx context.Context, id, outcome string, at time.Time) error
}

type Predictions interface {
	// CreatePrediction returns ErrAlreadyExists for a second prediction by the
	// same student on the same game.
	CreatePrediction(ctx context.Context, p domain.Prediction) error

	ListPredictionsByGame(ctx context.Context, gameID string) ([]domain.Prediction, error)

	// ScorePrediction sets correctness and points only if not yet scored.
	// Returns ErrNotMatched otherwise.
	ScorePrediction(ctx context.Context, id string, isCorrect bool, points int) error
}

type ResetTokens interface {
	CreateResetToken(ctx context.Context, t domain.ResetToken) error
	GetResetTokenByHash(ctx context.Context, hash string) (domain.ResetToken, error)

	// ConsumeResetToken marks the token consumed in one conditional update,
	// guarded by "not yet consumed" and "expires_at >= now". Returns the
	// consumed record, or ErrNotMatched when the guard failed.
	ConsumeResetToken(ctx context.Context, hash string, now time.Time) (domain.ResetToken, error)

	// DeleteExpiredResetTokens removes tokens that expired before cutoff and
	// reports how many went.
	DeleteExpiredResetTokens(ctx context.Context, cutoff time.Time) (int64, error)
}
