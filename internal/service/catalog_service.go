package service

import (
	"context"
	"errors"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/validate"
)

// CatalogService is the business logic for the services catalog.
type CatalogService interface {
	List(ctx context.Context, featuredOnly bool) ([]*model.Service, error)
	Create(ctx context.Context, form validate.ServiceForm) (*model.Service, map[string]string, error)
	Update(ctx context.Context, id string, form validate.ServiceForm) (*model.Service, map[string]string, error)
	Delete(ctx context.Context, id string) error
}

// catalogServiceImpl is the production implementation of CatalogService.
type catalogServiceImpl struct {
	repo repository.ServiceRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) List(ctx context.Context, featuredOnly bool) ([]*model.Service, error) {
	return s.repo.List(ctx, featuredOnly)
}

// Create validates the form, enforces slug uniqueness and persists.
func (s *catalogServiceImpl) Create(ctx context.Context, form validate.ServiceForm) (*model.Service, map[string]string, error) {
	if fieldErrors := validate.ServiceFormErrors(form); fieldErrors != nil {
		return nil, fieldErrors, nil
	}
	if conflict, err := s.slugTaken(ctx, form.Slug, ""); err != nil {
		return nil, nil, err
	} else if conflict {
		return nil, map[string]string{"slug": "A service with this slug already exists"}, nil
	}

	svc := serviceFromForm(form)
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, nil, err
	}
	return svc, nil, nil
}

// Update validates the form, enforces slug uniqueness against other entries
// and replaces the stored service.
func (s *catalogServiceImpl) Update(ctx context.Context, id string, form validate.ServiceForm) (*model.Service, map[string]string, error) {
	if fieldErrors := validate.ServiceFormErrors(form); fieldErrors != nil {
		return nil, fieldErrors, nil
	}
	if conflict, err := s.slugTaken(ctx, form.Slug, id); err != nil {
		return nil, nil, err
	} else if conflict {
		return nil, map[string]string{"slug": "A service with this slug already exists"}, nil
	}

	svc := serviceFromForm(form)
	svc.ID = id
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, nil, err
	}
	return svc, nil, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *catalogServiceImpl) slugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	id, err := s.repo.FindIDBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id != excludeID, nil
}

func serviceFromForm(form validate.ServiceForm) *model.Service {
	return &model.Service{
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		Icon:        nilIfEmpty(form.Icon),
		ImageURL:    nilIfEmpty(form.ImageURL),
		Featured:    form.Featured,
		Order:       form.Order,
	}
}
