package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, phone, message, status, priority, source,
	assigned_to, notes, created_at, updated_at, contacted_at, closed_at`

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, message, status, priority, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		lead.Message,
		lead.Status,
		lead.Priority,
		lead.Source,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads ORDER BY created_at DESC`, leadColumns)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Update applies only the fields present in the request. The contacted_at
// stamp survives later transitions back to contacted (COALESCE keeps the
// first value); closed_at is restamped on every close.
func (r *LeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate, now time.Time) (*entity.Lead, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{now}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addSet("status", *update.Status)
		if *update.Status == entity.LeadStatusContacted {
			sets = append(sets, fmt.Sprintf("contacted_at = COALESCE(contacted_at, $%d)", len(args)+1))
			args = append(args, now)
		}
		if update.Status.IsClosed() {
			addSet("closed_at", now)
		}
	}
	if update.Priority != nil {
		addSet("priority", *update.Priority)
	}
	if update.Notes != nil {
		addSet("notes", *update.Notes)
	}
	if update.AssignedTo != nil {
		addSet("assigned_to", *update.AssignedTo)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE leads SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), leadColumns,
	)

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	return lead, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var phone, assignedTo, notes sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&phone,
		&lead.Message,
		&lead.Status,
		&lead.Priority,
		&lead.Source,
		&assignedTo,
		&notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lead.ContactedAt,
		&lead.ClosedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Phone = phone.String
	lead.AssignedTo = assignedTo.String
	lead.Notes = notes.String
	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
