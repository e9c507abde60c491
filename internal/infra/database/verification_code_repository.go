package database

import (
	"context"
	"database/sql"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type VerificationCodeRepository struct {
	DB *sql.DB
}

func NewVerificationCodeRepository(db *sql.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{DB: db}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (id, admin_id, code, type, new_value, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		code.ID,
		code.AdminID,
		code.Code,
		code.Type,
		code.NewValue,
		code.ExpiresAt,
		code.Used,
		code.CreatedAt,
	)
	return err
}

// FindValid picks the newest live code matching the digits. Ties cannot
// happen in practice since issuing a code retires everything pending.
func (r *VerificationCodeRepository) FindValid(ctx context.Context, adminID, code string) (*entity.VerificationCode, error) {
	query := `
		SELECT id, admin_id, code, type, new_value, expires_at, used, created_at
		FROM verification_codes
		WHERE admin_id = $1 AND code = $2 AND used = false AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var vc entity.VerificationCode
	err := r.DB.QueryRowContext(ctx, query, adminID, code).Scan(
		&vc.ID,
		&vc.AdminID,
		&vc.Code,
		&vc.Type,
		&vc.NewValue,
		&vc.ExpiresAt,
		&vc.Used,
		&vc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vc, nil
}

func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE verification_codes SET used = true WHERE id = $1`, id)
	return err
}

func (r *VerificationCodeRepository) InvalidatePending(ctx context.Context, adminID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE verification_codes SET used = true WHERE admin_id = $1 AND used = false`, adminID)
	return err
}
