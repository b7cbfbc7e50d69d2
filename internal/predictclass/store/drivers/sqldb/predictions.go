package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

type predictionsRepo struct {
	c conn
}

func (r *predictionsRepo) CreatePrediction(ctx context.Context, p domain.Prediction) error {
	return r.c.insert(ctx,
		`INSERT INTO predictions (id, game_id, student_id, choice, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.GameID, p.StudentID, p.Choice, p.Confidence, toNanos(p.CreatedAt),
	)
}

func (r *predictionsRepo) ListPredictionsByGame(ctx context.Context, gameID string) ([]domain.Prediction, error) {
	rows, err := r.c.query(ctx, `
		SELECT id, game_id, student_id, choice, confidence, is_correct, points, created_at
		FROM predictions WHERE game_id = ? ORDER BY created_at, id`,
		gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Prediction
	for rows.Next() {
		var (
			p       domain.Prediction
			correct sql.NullBool
			points  sql.NullInt64
			created int64
		)
		if err := rows.Scan(&p.ID, &p.GameID, &p.StudentID, &p.Choice, &p.Confidence, &correct, &points, &created); err != nil {
			return nil, err
		}
		if correct.Valid {
			b := correct.Bool
			p.IsCorrect = &b
		}
		if points.Valid {
			n := int(points.Int64)
			p.Points = &n
		}
		p.CreatedAt = fromNanos(created)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *predictionsRepo) ScorePrediction(ctx context.Context, id string, isCorrect bool, points int) error {
	res, err := r.c.exec(ctx,
		`UPDATE predictions SET is_correct = ?, points = ? WHERE id = ? AND points IS NULL`,
		isCorrect, points, id,
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
