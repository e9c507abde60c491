package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusQualified  LeadStatus = "qualified"
	LeadStatusProposal   LeadStatus = "proposal"
	LeadStatusClosedWon  LeadStatus = "closed_won"
	LeadStatusClosedLost LeadStatus = "closed_lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposal, LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusClosedWon || s == LeadStatusClosedLost
}

type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
	LeadPriorityUrgent LeadPriority = "urgent"
)

func (p LeadPriority) IsValid() bool {
	switch p {
	case LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh, LeadPriorityUrgent:
		return true
	}
	return false
}

type Lead struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Message     string       `json:"message"`
	Status      LeadStatus   `json:"status"`
	Priority    LeadPriority `json:"priority"`
	Source      string       `json:"source"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ContactedAt *time.Time   `json:"contacted_at,omitempty"`
	ClosedAt    *time.Time   `json:"closed_at,omitempty"`
}

// NewLead builds a website lead the way the contact form creates them.
func NewLead(name, email, phone, message string) *Lead {
	now := time.Now()
	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Status:    LeadStatusNew,
		Priority:  LeadPriorityMedium,
		Source:    "website",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LeadUpdate carries the PUT /api/leads/{id} partial fields. Nil means
// "field absent", so an empty notes string still clears notes.
type LeadUpdate struct {
	Status     *LeadStatus   `json:"status,omitempty"`
	Priority   *LeadPriority `json:"priority,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
	AssignedTo *string       `json:"assigned_to,omitempty"`
}

func (u LeadUpdate) Empty() bool {
	return u.Status == nil && u.Priority == nil && u.Notes == nil && u.AssignedTo == nil
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
	Update(ctx context.Context, id string, update LeadUpdate, now time.Time) (*Lead, error)
}
