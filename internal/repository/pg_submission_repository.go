package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Create inserts a contact_submissions row, assigning ID and CreatedAt.
func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	sub.Handled = false
	sub.Notes = nil

	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, subject, message, handled, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)`,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.CreatedAt,
	)
	return err
}

// Update applies the non-nil fields of upd to an existing row.
func (r *PgSubmissionRepository) Update(ctx context.Context, id string, upd model.SubmissionUpdate) error {
	var sets []string
	var args []any

	if upd.Handled != nil {
		args = append(args, *upd.Handled)
		sets = append(sets, "handled = $"+strconv.Itoa(len(args)))
	}
	if upd.Notes != nil {
		args = append(args, *upd.Notes)
		sets = append(sets, "notes = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		// Nothing to change; still report missing rows.
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM contact_submissions WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return nil
	}

	args = append(args, id)
	query := `UPDATE contact_submissions SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a submission. Deleting an absent id reports ErrNotFound.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns submissions newest first, optionally filtered by handled
// state and paginated by limit/offset.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	var conditions []string
	var args []any

	if opts.Handled != nil {
		args = append(args, *opts.Handled)
		conditions = append(conditions, "handled = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, name, email, phone, subject, message, handled, notes, created_at
	          FROM contact_submissions` + where + ` ORDER BY created_at DESC`

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.Handled, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Count returns the number of submissions matching the filter.
func (r *PgSubmissionRepository) Count(ctx context.Context, filter model.SubmissionFilter) (int, error) {
	query := `SELECT COUNT(*) FROM contact_submissions`
	var args []any
	if filter.Handled != nil {
		query += ` WHERE handled = $1`
		args = append(args, *filter.Handled)
	}

	var n int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
