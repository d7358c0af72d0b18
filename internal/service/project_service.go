package service

import (
	"context"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/validate"
)

// ProjectService is the business logic for the portfolio.
type ProjectService interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Categories(ctx context.Context) ([]string, error)

	// Create validates the form and persists a new project. A non-nil field
	// error map means the input was rejected (including a taken slug); err is
	// reserved for storage failures.
	Create(ctx context.Context, form validate.ProjectForm) (*model.Project, map[string]string, error)
	Update(ctx context.Context, id string, form validate.ProjectForm) (*model.Project, map[string]string, error)
	Delete(ctx context.Context, id string) error
	// ToggleFeatured flips the featured flag and returns the new value.
	ToggleFeatured(ctx context.Context, id string) (bool, error)
}
