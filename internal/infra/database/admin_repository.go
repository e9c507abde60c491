package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

const adminColumns = `id, full_name, email, password_hash, role, is_active, created_at, updated_at`

// FindByEmail returns the active admin for the address, or entity.ErrNotFound.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1 AND is_active = true`
	return r.scanAdmin(r.DB.QueryRowContext(ctx, query, email))
}

// EmailTaken checks active and inactive records alike; the unique constraint
// spans both.
func (r *AdminRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM admin_users WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *AdminRepository) UpdateEmail(ctx context.Context, adminID, email string) (*entity.AdminUser, error) {
	query := `
		UPDATE admin_users SET email = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + adminColumns

	admin, err := r.scanAdmin(r.DB.QueryRowContext(ctx, query, email, adminID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrEmailTaken
		}
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) UpdatePasswordHash(ctx context.Context, adminID, hash string) (*entity.AdminUser, error) {
	query := `
		UPDATE admin_users SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + adminColumns

	return r.scanAdmin(r.DB.QueryRowContext(ctx, query, hash, adminID))
}

func (r *AdminRepository) scanAdmin(row *sql.Row) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	err := row.Scan(
		&admin.ID,
		&admin.FullName,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
