// Package users persists chapter members keyed by their identity-provider id.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/dbx"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

const userColumns = `id, workos_id, first_name, last_name, email, email_verified, profile_picture_url,
		 updated_at, member_type, school, organization_ids, entity_ids, approved_by`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u          models.User
		picture    sql.NullString
		approvedBy sql.NullString
		role       string
		orgIDs     []byte
		entityIDs  []byte
	)

	err := s.Scan(&u.ID, &u.WorkOSID, &u.FirstName, &u.LastName, &u.Email, &u.EmailVerified, &picture,
		&u.UpdatedAt, &role, &u.School, &orgIDs, &entityIDs, &approvedBy)
	if err != nil {
		return nil, err
	}

	u.Role = models.Role(role)
	if picture.Valid {
		u.ProfilePictureURL = &picture.String
	}
	if approvedBy.Valid {
		u.ApprovedBy = &approvedBy.String
	}
	if u.OrganizationIDs, err = decodeIDs(orgIDs); err != nil {
		return nil, err
	}
	if u.EntityIDs, err = decodeIDs(entityIDs); err != nil {
		return nil, err
	}

	return &u, nil
}

func decodeIDs(b []byte) ([]string, error) {
	ids := []string{}
	if len(b) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	return string(b), err
}

func (r *PostgresRepository) Upsert(ctx context.Context, u *models.User) (*models.User, error) {
	orgIDs, err := encodeIDs(u.OrganizationIDs)
	if err != nil {
		return nil, err
	}
	entityIDs, err := encodeIDs(u.EntityIDs)
	if err != nil {
		return nil, err
	}

	role := u.Role
	if role == "" {
		role = models.RolePublic
	}

	// updated_at is a fixed-width ISO-8601 string, so byte order is time order
	query :=
		`INSERT INTO users (workos_id, first_name, last_name, email, email_verified, profile_picture_url,
		                    updated_at, member_type, school, organization_ids, entity_ids)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11::jsonb)
		 ON CONFLICT (workos_id) DO UPDATE SET
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   email = EXCLUDED.email,
		   email_verified = EXCLUDED.email_verified,
		   profile_picture_url = EXCLUDED.profile_picture_url,
		   updated_at = EXCLUDED.updated_at
		 WHERE users.updated_at COLLATE "C" < EXCLUDED.updated_at COLLATE "C"
		 `

	_, err = r.db.ExecContext(ctx, query,
		u.WorkOSID, u.FirstName, u.LastName, u.Email, u.EmailVerified, u.ProfilePictureURL,
		u.UpdatedAt, string(role), u.School, orgIDs, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return r.GetByWorkOSID(ctx, u.WorkOSID)
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `id = $1`, id)
}

func (r *PostgresRepository) GetByWorkOSID(ctx context.Context, workosID string) (*models.User, error) {
	return r.getOne(ctx, `workos_id = $1`, workosID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
}

func (r *PostgresRepository) ListBySchool(ctx context.Context, school string) ([]*models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE school = $1 ORDER BY created_at`, school)
}

func (r *PostgresRepository) UpdateSchool(ctx context.Context, id string, school string) (*models.User, error) {
	query := `UPDATE users SET school = $2 WHERE id = $1 RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, school))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) SetApprovedBy(ctx context.Context, id string, approverID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET approved_by = $2 WHERE id = $1`, id, approverID)
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
