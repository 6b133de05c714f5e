package courses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/dbx"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

const courseColumns = `id, user_id, course_name, course_code, semester, year, credit_hours, current_gpa,
		 syllabus_file_id, syllabus_file_name, syllabus_processed, syllabus_uploaded_at, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (*models.Course, error) {
	var (
		c          models.Course
		gpa        sql.NullFloat64
		fileID     sql.NullString
		fileName   sql.NullString
		uploadedAt sql.NullTime
	)

	err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Semester, &c.Year, &c.CreditHours, &gpa,
		&fileID, &fileName, &c.SyllabusProcessed, &uploadedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if gpa.Valid {
		c.CurrentGPA = &gpa.Float64
	}
	if fileID.Valid {
		c.SyllabusFileID = &fileID.String
	}
	if fileName.Valid {
		c.SyllabusFileName = &fileName.String
	}
	if uploadedAt.Valid {
		c.SyllabusUploadedAt = &uploadedAt.Time
	}

	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Course) (*models.Course, error) {
	query :=
		`INSERT INTO courses (user_id, course_name, course_code, semester, year, credit_hours, current_gpa,
		                      syllabus_file_id, syllabus_file_name, syllabus_processed, syllabus_uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		c.UserID, c.Name, c.Code, c.Semester, c.Year, c.CreditHours, c.CurrentGPA,
		c.SyllabusFileID, c.SyllabusFileName, c.SyllabusProcessed, c.SyllabusUploadedAt).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListByFileID(ctx context.Context, fileID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE syllabus_file_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, fileID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdateInfo(ctx context.Context, id string, u models.CourseInfoUpdate) (*models.Course, error) {
	query :=
		`UPDATE courses SET
		   course_name = COALESCE($2::text, course_name),
		   course_code = COALESCE($3::text, course_code),
		   semester = COALESCE($4::text, semester),
		   year = COALESCE($5::integer, year),
		   credit_hours = COALESCE($6::double precision, credit_hours)
		 WHERE id = $1
		 RETURNING ` + courseColumns

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id, u.Name, u.Code, u.Semester, u.Year, u.CreditHours))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) SetProcessed(ctx context.Context, id string, processed bool) error {
	return r.exec(ctx, `UPDATE courses SET syllabus_processed = $2 WHERE id = $1`, id, processed)
}

func (r *PostgresRepository) SetCurrentGPA(ctx context.Context, id string, gpa *float64) error {
	return r.exec(ctx, `UPDATE courses SET current_gpa = $2 WHERE id = $1`, id, gpa)
}
