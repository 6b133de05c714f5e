package assignments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/dbx"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

const assignmentColumns = `id, course_id, user_id, name, due_date, weight, category, max_points`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssignment(s scanner) (*models.Assignment, error) {
	var (
		a        models.Assignment
		dueDate  sql.NullString
		category sql.NullString
	)

	if err := s.Scan(&a.ID, &a.CourseID, &a.UserID, &a.Name, &dueDate, &a.Weight, &category, &a.MaxPoints); err != nil {
		return nil, err
	}

	if dueDate.Valid {
		a.DueDate = &dueDate.String
	}
	if category.Valid {
		a.Category = &category.String
	}

	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error) {
	query :=
		`INSERT INTO assignments (course_id, user_id, name, due_date, weight, category, max_points)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		a.CourseID, a.UserID, a.Name, a.DueDate, a.Weight, a.Category, a.MaxPoints).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) ListByCourse(ctx context.Context, courseID, userID string) ([]*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE course_id = $1 AND user_id = $2`

	rows, err := r.db.QueryContext(ctx, query, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
