package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type VerifyProfileChangeInput struct {
	CurrentEmail string `json:"currentEmail"`
	Code         string `json:"code"`
}

type VerifyProfileChangeOutput struct {
	Admin      entity.AdminUser  `json:"data"`
	ChangeType entity.ChangeType `json:"changeType"`
}

type VerifyProfileChangeUseCase struct {
	AdminRepo AdminRepositoryInterface
	CodeRepo  VerificationCodeRepositoryInterface
	Mailer    MailerInterface
	Logger    zerolog.Logger
}

func NewVerifyProfileChangeUseCase(
	adminRepo AdminRepositoryInterface,
	codeRepo VerificationCodeRepositoryInterface,
	mailer MailerInterface,
	logger zerolog.Logger,
) *VerifyProfileChangeUseCase {
	return &VerifyProfileChangeUseCase{
		AdminRepo: adminRepo,
		CodeRepo:  codeRepo,
		Mailer:    mailer,
		Logger:    logger,
	}
}

func (uc *VerifyProfileChangeUseCase) Execute(ctx context.Context, input VerifyProfileChangeInput) (*VerifyProfileChangeOutput, error) {
	admin, err := uc.AdminRepo.FindByEmail(ctx, input.CurrentEmail)
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, &DomainError{Code: CodeNotFound, Message: "Admin user not found"}
		}
		uc.Logger.Error().Err(err).Msg("verify-code: admin lookup failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to load admin user"}
	}

	// Wrong digits, expired and already-used all collapse into the same
	// answer. The caller learns nothing about which it was.
	code, err := uc.CodeRepo.FindValid(ctx, admin.ID, input.Code)
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, &DomainError{Code: CodeInvalidCode, Message: "Invalid or expired verification code"}
		}
		uc.Logger.Error().Err(err).Msg("verify-code: code lookup failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to check verification code"}
	}

	var updated *entity.AdminUser
	switch code.Type {
	case entity.ChangeTypeEmail:
		updated, err = uc.AdminRepo.UpdateEmail(ctx, admin.ID, code.NewValue)
	case entity.ChangeTypePassword:
		updated, err = uc.AdminRepo.UpdatePasswordHash(ctx, admin.ID, code.NewValue)
	default:
		uc.Logger.Error().Str("type", string(code.Type)).Msg("verify-code: unknown change type stored")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to update profile"}
	}
	if err != nil {
		uc.Logger.Error().Err(err).Str("admin_id", admin.ID).Msg("verify-code: applying change failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to update profile"}
	}

	if err := uc.CodeRepo.MarkUsed(ctx, code.ID); err != nil {
		uc.Logger.Error().Err(err).Str("code_id", code.ID).Msg("verify-code: marking code used failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to update profile"}
	}

	// Best effort; the change is already applied.
	if code.Type == entity.ChangeTypePassword {
		if err := uc.Mailer.SendPasswordChanged(admin.Email); err != nil {
			uc.Logger.Warn().Err(err).Str("admin_id", admin.ID).Msg("verify-code: confirmation email failed")
		}
	}

	uc.Logger.Info().
		Str("admin_id", admin.ID).
		Str("change_type", string(code.Type)).
		Msg("profile change applied")

	return &VerifyProfileChangeOutput{
		Admin:      updated.Sanitize(),
		ChangeType: code.Type,
	}, nil
}
