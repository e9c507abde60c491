package usecase

import (
	"context"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type AdminRepositoryInterface interface {
	// FindByEmail matches active admins only.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	// EmailTaken checks the address against every admin record, active or not.
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, adminID, email string) (*entity.AdminUser, error)
	UpdatePasswordHash(ctx context.Context, adminID, hash string) (*entity.AdminUser, error)
}

type VerificationCodeRepositoryInterface interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	// FindValid returns the most recently issued unused, unexpired code
	// matching the digits, or entity.ErrNotFound.
	FindValid(ctx context.Context, adminID, code string) (*entity.VerificationCode, error)
	MarkUsed(ctx context.Context, id string) error
	// InvalidatePending marks every unused code for the admin as used, so a
	// fresh request supersedes anything still outstanding.
	InvalidatePending(ctx context.Context, adminID string) error
}

type MailerInterface interface {
	SendVerificationCode(to, code string, changeType entity.ChangeType) error
	SendPasswordChanged(to string) error
}
