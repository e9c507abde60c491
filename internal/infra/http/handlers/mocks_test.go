package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate, now time.Time) (*entity.Lead, error) {
	args := m.Called(ctx, id, update, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) UpdateEmail(ctx context.Context, adminID, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, adminID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) UpdatePasswordHash(ctx context.Context, adminID, hash string) (*entity.AdminUser, error) {
	args := m.Called(ctx, adminID, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

type MockVerificationCodeRepository struct {
	mock.Mock
}

func (m *MockVerificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockVerificationCodeRepository) FindValid(ctx context.Context, adminID, code string) (*entity.VerificationCode, error) {
	args := m.Called(ctx, adminID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationCode), args.Error(1)
}

func (m *MockVerificationCodeRepository) MarkUsed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVerificationCodeRepository) InvalidatePending(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationCode(to, code string, changeType entity.ChangeType) error {
	args := m.Called(to, code, changeType)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordChanged(to string) error {
	args := m.Called(to)
	return args.Error(0)
}
