package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

func newVerifyUC(adminRepo *MockAdminRepository, codeRepo *MockVerificationCodeRepository, mailer *MockMailer) *VerifyProfileChangeUseCase {
	return NewVerifyProfileChangeUseCase(adminRepo, codeRepo, mailer, zerolog.Nop())
}

func pendingCode(admin *entity.AdminUser, digits string, changeType entity.ChangeType, newValue string) *entity.VerificationCode {
	return entity.NewVerificationCode(admin.ID, digits, changeType, newValue, time.Now())
}

func TestVerifyChangePasswordSuccess(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t, "oldpass")
	code := pendingCode(admin, "482913", entity.ChangeTypePassword, "$2a$10$newhash")

	updated := *admin
	updated.PasswordHash = "$2a$10$newhash"

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
	codeRepo.On("FindValid", mock.Anything, admin.ID, "482913").Return(code, nil)
	adminRepo.On("UpdatePasswordHash", mock.Anything, admin.ID, "$2a$10$newhash").Return(&updated, nil)
	codeRepo.On("MarkUsed", mock.Anything, code.ID).Return(nil)
	mailer.On("SendPasswordChanged", admin.Email).Return(nil)

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	output, err := uc.Execute(ctx, VerifyProfileChangeInput{
		CurrentEmail: admin.Email,
		Code:         "482913",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ChangeTypePassword, output.ChangeType)
	assert.Empty(t, output.Admin.PasswordHash)
	codeRepo.AssertCalled(t, "MarkUsed", mock.Anything, code.ID)
	mailer.AssertCalled(t, "SendPasswordChanged", admin.Email)
}

func TestVerifyChangeEmailSuccess(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t, "oldpass")
	code := pendingCode(admin, "123456", entity.ChangeTypeEmail, "new@horsepowerelectrical.online")

	updated := *admin
	updated.Email = "new@horsepowerelectrical.online"

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
	codeRepo.On("FindValid", mock.Anything, admin.ID, "123456").Return(code, nil)
	adminRepo.On("UpdateEmail", mock.Anything, admin.ID, "new@horsepowerelectrical.online").Return(&updated, nil)
	codeRepo.On("MarkUsed", mock.Anything, code.ID).Return(nil)

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	output, err := uc.Execute(ctx, VerifyProfileChangeInput{
		CurrentEmail: admin.Email,
		Code:         "123456",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeEmail, output.ChangeType)
	assert.Equal(t, "new@horsepowerelectrical.online", output.Admin.Email)
	mailer.AssertNotCalled(t, "SendPasswordChanged", mock.Anything)
}

// Wrong digits, expired codes and consumed codes all come back from the
// repository as not-found, so the caller sees one undifferentiated error.
func TestVerifyChangeInvalidCode(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t, "oldpass")

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
	codeRepo.On("FindValid", mock.Anything, admin.ID, "000000").Return(nil, entity.ErrNotFound)

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	_, err := uc.Execute(ctx, VerifyProfileChangeInput{
		CurrentEmail: admin.Email,
		Code:         "000000",
	})

	var de *DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, CodeInvalidCode, de.Code)
	adminRepo.AssertNotCalled(t, "UpdateEmail", mock.Anything, mock.Anything, mock.Anything)
	adminRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

// A correct code succeeds exactly once; the consumed code is gone on the
// second submission.
func TestVerifyChangeCodeSingleUse(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t, "oldpass")
	code := pendingCode(admin, "654321", entity.ChangeTypePassword, "$2a$10$newhash")

	updated := *admin
	updated.PasswordHash = "$2a$10$newhash"

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
	codeRepo.On("FindValid", mock.Anything, admin.ID, "654321").Return(code, nil).Once()
	codeRepo.On("FindValid", mock.Anything, admin.ID, "654321").Return(nil, entity.ErrNotFound)
	adminRepo.On("UpdatePasswordHash", mock.Anything, admin.ID, "$2a$10$newhash").Return(&updated, nil)
	codeRepo.On("MarkUsed", mock.Anything, code.ID).Return(nil)
	mailer.On("SendPasswordChanged", admin.Email).Return(nil)

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	input := VerifyProfileChangeInput{CurrentEmail: admin.Email, Code: "654321"}

	_, err := uc.Execute(ctx, input)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, input)
	var de *DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, CodeInvalidCode, de.Code)
}

func TestVerifyChangeUnknownAdmin(t *testing.T) {
	ctx := context.Background()

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, "ghost@nowhere.com").Return(nil, entity.ErrNotFound)

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	_, err := uc.Execute(ctx, VerifyProfileChangeInput{
		CurrentEmail: "ghost@nowhere.com",
		Code:         "123456",
	})

	var de *DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestVerifyChangeConfirmationEmailBestEffort(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t, "oldpass")
	code := pendingCode(admin, "777777", entity.ChangeTypePassword, "$2a$10$newhash")

	updated := *admin
	updated.PasswordHash = "$2a$10$newhash"

	adminRepo := new(MockAdminRepository)
	codeRepo := new(MockVerificationCodeRepository)
	mailer := new(MockMailer)

	adminRepo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
	codeRepo.On("FindValid", mock.Anything, admin.ID, "777777").Return(code, nil)
	adminRepo.On("UpdatePasswordHash", mock.Anything, admin.ID, "$2a$10$newhash").Return(&updated, nil)
	codeRepo.On("MarkUsed", mock.Anything, code.ID).Return(nil)
	mailer.On("SendPasswordChanged", admin.Email).Return(errors.New("smtp down"))

	uc := newVerifyUC(adminRepo, codeRepo, mailer)
	output, err := uc.Execute(ctx, VerifyProfileChangeInput{
		CurrentEmail: admin.Email,
		Code:         "777777",
	})

	// the change is applied even though the notification failed
	assert.NoError(t, err)
	assert.Equal(t, entity.ChangeTypePassword, output.ChangeType)
}
