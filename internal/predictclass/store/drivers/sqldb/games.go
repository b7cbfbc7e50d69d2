package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

type gamesRepo struct {
	c conn
}

const gameColumns = `id, class_id, question, outcome, resolved_at, created_at`

func scanGame(row interface{ Scan(...any) error }) (domain.Game, error) {
	var (
		g        domain.Game
		outcome  sql.NullString
		resolved sql.NullInt64
		created  int64
	)
	if err := row.Scan(&g.ID, &g.ClassID, &g.Question, &outcome, &resolved, &created); err != nil {
		return domain.Game{}, err
	}
	g.Outcome = fromNullString(outcome)
	g.ResolvedAt = fromNullNanos(resolved)
	g.CreatedAt = fromNanos(created)
	return g, nil
}

func (r *gamesRepo) CreateGame(ctx context.Context, g domain.Game) error {
	return r.c.insert(ctx,
		`INSERT INTO games (id, class_id, question, created_at) VALUES (?, ?, ?, ?)`,
		g.ID, g.ClassID, g.Question, toNanos(g.CreatedAt),
	)
}

func (r *gamesRepo) GetGameByID(ctx context.Context, id string) (domain.Game, error) {
	g, err := scanGame(r.c.queryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id))
	if err != nil {
		return domain.Game{}, mapNotFound(err)
	}
	return g, nil
}

func (r *gamesRepo) ListGamesByClass(ctx context.Context, classID string) ([]domain.Game, error) {
	rows, err := r.c.query(ctx,
		`SELECT `+gameColumns+` FROM games WHERE class_id = ? ORDER BY created_at, id`,
		classID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *gamesRepo) ResolveGame(ctx context.Context, id, outcome string, at time.Time) error {
	res, err := r.c.exec(ctx,
		`UPDATE games SET outcome = ?, resolved_at = ? WHERE id = ? AND resolved_at IS NULL`,
		outcome, toNanos(at), id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotMatched
	}
	return nil
}
