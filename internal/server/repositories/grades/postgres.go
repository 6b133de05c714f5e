package grades

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/chapterhub/internal/dbx"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

const gradeColumns = `g.id, g.assignment_id, g.user_id, g.points_earned, g.max_points, g.percentage, g.entered_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, g *models.Grade) (string, error) {
	query :=
		`INSERT INTO grades (assignment_id, user_id, points_earned, max_points, percentage, entered_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (assignment_id, user_id) DO UPDATE SET
		   points_earned = EXCLUDED.points_earned,
		   max_points = EXCLUDED.max_points,
		   percentage = EXCLUDED.percentage,
		   entered_at = EXCLUDED.entered_at
		 RETURNING id
		 `

	var id string
	err := r.db.QueryRowContext(ctx, query,
		g.AssignmentID, g.UserID, g.PointsEarned, g.MaxPoints, g.Percentage, g.EnteredAt).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	g.ID = id
	return id, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Grade, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.ID, &g.AssignmentID, &g.UserID, &g.PointsEarned, &g.MaxPoints, &g.Percentage, &g.EnteredAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Grade, error) {
	return r.list(ctx, `SELECT `+gradeColumns+` FROM grades g WHERE g.user_id = $1 ORDER BY g.entered_at`, userID)
}

func (r *PostgresRepository) ListByCourse(ctx context.Context, courseID, userID string) ([]*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades g
		 JOIN assignments a ON a.id = g.assignment_id
		 WHERE a.course_id = $1 AND g.user_id = $2`

	return r.list(ctx, query, courseID, userID)
}
