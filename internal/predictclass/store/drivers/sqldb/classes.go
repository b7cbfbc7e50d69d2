package sqldb

import (
	"context"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
)

type classesRepo struct {
	c conn
}

const classColumns = `id, name, teacher_id, join_code, created_at`

func scanClass(row interface{ Scan(...any) error }) (domain.Class, error) {
	var (
		c       domain.Class
		created int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.TeacherID, &c.JoinCode, &created); err != nil {
		return domain.Class{}, err
	}
	c.CreatedAt = fromNanos(created)
	return c, nil
}

func (r *classesRepo) CreateClass(ctx context.Context, c domain.Class) error {
	return r.c.insert(ctx,
		`INSERT INTO classes (`+classColumns+`) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.TeacherID, c.JoinCode, toNanos(c.CreatedAt),
	)
}

func (r *classesRepo) GetClassByID(ctx context.Context, id string) (domain.Class, error) {
	c, err := scanClass(r.c.queryRow(ctx, `SELECT `+classColumns+` FROM classes WHERE id = ?`, id))
	if err != nil {
		return domain.Class{}, mapNotFound(err)
	}
	return c, nil
}

func (r *classesRepo) GetClassByJoinCode(ctx context.Context, code string) (domain.Class, error) {
	c, err := scanClass(r.c.queryRow(ctx, `SELECT `+classColumns+` FROM classes WHERE join_code = ?`, code))
	if err != nil {
		return domain.Class{}, mapNotFound(err)
	}
	return c, nil
}

func (r *classesRepo) JoinCodeExists(ctx context.Context, code string) (bool, error) {
	var n int64
	if err := r.c.queryRow(ctx, `SELECT COUNT(*) FROM classes WHERE join_code = ?`, code).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *classesRepo) ListClasses(ctx context.Context) ([]domain.Class, error) {
	rows, err := r.c.query(ctx, `SELECT `+classColumns+` FROM classes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *classesRepo) AddEnrollment(ctx context.Context, e domain.Enrollment) error {
	return r.c.insert(ctx,
		`INSERT INTO enrollments (class_id, student_id, joined_at) VALUES (?, ?, ?)`,
		e.ClassID, e.StudentID, toNanos(e.JoinedAt),
	)
}

func (r *classesRepo) IsEnrolled(ctx context.Context, classID, studentID string) (bool, error) {
	var n int64
	err := r.c.queryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE class_id = ? AND student_id = ?`,
		classID, studentID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *classesRepo) Leaderboard(ctx context.Context, classID string) ([]domain.LeaderboardEntry, error) {
	rows, err := r.c.query(ctx, `
		SELECT e.student_id, u.display_name,
		       COALESCE(SUM(p.points), 0) AS points,
		       COUNT(p.id) AS predictions
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		LEFT JOIN games g ON g.class_id = e.class_id
		LEFT JOIN predictions p ON p.game_id = g.id AND p.student_id = e.student_id
		WHERE e.class_id = ?
		GROUP BY e.student_id, u.display_name
		ORDER BY points DESC, u.display_name ASC`,
		classID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.LeaderboardEntry{}
	for rows.Next() {
		var (
			e           domain.LeaderboardEntry
			points, cnt int64
		)
		if err := rows.Scan(&e.StudentID, &e.DisplayName, &points, &cnt); err != nil {
			return nil, err
		}
		e.Points = int(points)
		e.Predictions = int(cnt)
		out = append(out, e)
	}
	return out, rows.Err()
}
