package repository

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// ProjectRepository is the persistence contract for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	// GetBySlug returns a published project for the public site.
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	// FindIDBySlug returns the id of the project holding slug, or ErrNotFound.
	// Used for slug-uniqueness checks.
	FindIDBySlug(ctx context.Context, slug string) (string, error)
	Create(ctx context.Context, p *model.Project) error
	// Update replaces the project's fields and its image set.
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	// Categories returns the distinct categories of published projects.
	Categories(ctx context.Context) ([]string, error)
}
