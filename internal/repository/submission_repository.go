package repository

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// SubmissionRepository is the persistence contract for contact submissions.
// Create is the only write path for new rows; mutations are admin-only.
type SubmissionRepository interface {
	// Create assigns ID and CreatedAt and persists the submission.
	Create(ctx context.Context, sub *model.ContactSubmission) error

	// Update applies the non-nil fields of upd. Returns ErrNotFound when id
	// does not exist.
	Update(ctx context.Context, id string, upd model.SubmissionUpdate) error

	// Delete removes the submission. Returns ErrNotFound when id does not
	// exist — a second delete of the same id reports ErrNotFound so callers
	// surface double-click bugs instead of hiding them.
	Delete(ctx context.Context, id string) error

	// List returns submissions newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// Count returns the number of submissions matching the filter.
	Count(ctx context.Context, filter model.SubmissionFilter) (int, error)
}
