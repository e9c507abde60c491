package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const (
	ChangeTypeEmail    ChangeType = "email_change"
	ChangeTypePassword ChangeType = "password_change"
)

// VerificationCode is a single-use 6-digit token mailed to an admin before a
// sensitive profile change is applied. NewValue holds the pending change:
// the raw new email, or an already-hashed new password. Rows are never
// deleted, only marked used.
type VerificationCode struct {
	ID        string     `json:"id"`
	AdminID   string     `json:"admin_id"`
	Code      string     `json:"code"`
	Type      ChangeType `json:"type"`
	NewValue  string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	Used      bool       `json:"used"`
	CreatedAt time.Time  `json:"created_at"`
}

const VerificationCodeTTL = 10 * time.Minute

func NewVerificationCode(adminID, code string, changeType ChangeType, newValue string, issuedAt time.Time) *VerificationCode {
	return &VerificationCode{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		Code:      code,
		Type:      changeType,
		NewValue:  newValue,
		ExpiresAt: issuedAt.Add(VerificationCodeTTL),
		Used:      false,
		CreatedAt: issuedAt,
	}
}

func (v *VerificationCode) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
