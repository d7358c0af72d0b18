package repository

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// ServiceRepository is the persistence contract for the services catalog.
type ServiceRepository interface {
	// List returns services ordered by display order ascending. featuredOnly
	// restricts to featured entries.
	List(ctx context.Context, featuredOnly bool) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	FindIDBySlug(ctx context.Context, slug string) (string, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string) error
}
