package usecase

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
	"github.com/horsepowerelectrical/horsepower-api/internal/security"
)

type RequestProfileChangeInput struct {
	CurrentEmail    string `json:"currentEmail"`
	NewEmail        string `json:"newEmail,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
}

type RequestProfileChangeOutput struct {
	ChangeType entity.ChangeType `json:"changeType"`
}

type RequestProfileChangeUseCase struct {
	AdminRepo AdminRepositoryInterface
	CodeRepo  VerificationCodeRepositoryInterface
	Mailer    MailerInterface
	Logger    zerolog.Logger

	// Now is swappable for tests; zero value means time.Now.
	Now func() time.Time
}

func NewRequestProfileChangeUseCase(
	adminRepo AdminRepositoryInterface,
	codeRepo VerificationCodeRepositoryInterface,
	mailer MailerInterface,
	logger zerolog.Logger,
) *RequestProfileChangeUseCase {
	return &RequestProfileChangeUseCase{
		AdminRepo: adminRepo,
		CodeRepo:  codeRepo,
		Mailer:    mailer,
		Logger:    logger,
		Now:       time.Now,
	}
}

func (uc *RequestProfileChangeUseCase) Execute(ctx context.Context, input RequestProfileChangeInput) (*RequestProfileChangeOutput, error) {
	admin, err := uc.AdminRepo.FindByEmail(ctx, input.CurrentEmail)
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, &DomainError{Code: CodeNotFound, Message: "Admin user not found"}
		}
		uc.Logger.Error().Err(err).Msg("request-verification: admin lookup failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to load admin user"}
	}

	// Current password is only enforced when the client sends it. The UI
	// always does; the check stays optional for parity with the legacy flow.
	if input.CurrentPassword != "" && !security.CheckPassword(admin.PasswordHash, input.CurrentPassword) {
		return nil, &DomainError{Code: CodeUnauthorized, Message: "Current password is incorrect"}
	}

	changeType, newValue, err := uc.classifyChange(ctx, input)
	if err != nil {
		return nil, err
	}

	digits, err := generateCode()
	if err != nil {
		uc.Logger.Error().Err(err).Msg("request-verification: code generation failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to generate verification code"}
	}

	// Latest request supersedes: anything still pending for this admin dies
	// before the new code is written.
	if err := uc.CodeRepo.InvalidatePending(ctx, admin.ID); err != nil {
		uc.Logger.Error().Err(err).Msg("request-verification: invalidating pending codes failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to generate verification code"}
	}

	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}

	code := entity.NewVerificationCode(admin.ID, digits, changeType, newValue, now)
	if err := uc.CodeRepo.Create(ctx, code); err != nil {
		uc.Logger.Error().Err(err).Msg("request-verification: storing code failed")
		return nil, &TechnicalError{Code: CodeInternalError, Message: "failed to generate verification code"}
	}

	// The code goes to the admin's current address, not the candidate one.
	if err := uc.Mailer.SendVerificationCode(admin.Email, digits, changeType); err != nil {
		uc.Logger.Error().Err(err).Str("admin_id", admin.ID).Msg("request-verification: email delivery failed")
		return nil, &DomainError{Code: CodeDeliveryFailed, Message: "Failed to send verification code"}
	}

	uc.Logger.Info().
		Str("admin_id", admin.ID).
		Str("change_type", string(changeType)).
		Msg("verification code issued")

	return &RequestProfileChangeOutput{ChangeType: changeType}, nil
}

func (uc *RequestProfileChangeUseCase) classifyChange(ctx context.Context, input RequestProfileChangeInput) (entity.ChangeType, string, error) {
	switch {
	case input.NewEmail != "" && input.NewEmail != input.CurrentEmail:
		taken, err := uc.AdminRepo.EmailTaken(ctx, input.NewEmail)
		if err != nil {
			uc.Logger.Error().Err(err).Msg("request-verification: email uniqueness check failed")
			return "", "", &TechnicalError{Code: CodeInternalError, Message: "failed to check email"}
		}
		if taken {
			return "", "", &DomainError{Code: CodeConflict, Message: "Email already exists"}
		}
		return entity.ChangeTypeEmail, input.NewEmail, nil

	case input.NewEmail != "":
		return "", "", &DomainError{Code: CodeInvalidRequest, Message: "New email must be different from current email"}

	case input.NewPassword != "":
		hash, err := security.HashPassword(input.NewPassword)
		if err != nil {
			uc.Logger.Error().Err(err).Msg("request-verification: password hashing failed")
			return "", "", &TechnicalError{Code: CodeInternalError, Message: "failed to process password"}
		}
		return entity.ChangeTypePassword, hash, nil

	default:
		return "", "", &DomainError{Code: CodeInvalidRequest, Message: "No valid changes requested"}
	}
}

// generateCode draws uniformly from [100000, 999999], so codes never carry a
// leading zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return (&big.Int{}).Add(n, big.NewInt(100000)).String(), nil
}
