package service

import (
	"context"
	"testing"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/validate"
)

// ---------------------------------------------------------------------------
// mock service repository
// ---------------------------------------------------------------------------

type mockServiceRepo struct {
	byID     map[string]*model.Service
	idBySlug map[string]string
	created  []*model.Service
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{
		byID:     map[string]*model.Service{},
		idBySlug: map[string]string{},
	}
}

func (m *mockServiceRepo) List(ctx context.Context, featuredOnly bool) ([]*model.Service, error) {
	var out []*model.Service
	for _, svc := range m.byID {
		if featuredOnly && !svc.Featured {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	svc, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return svc, nil
}

func (m *mockServiceRepo) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	id, ok := m.idBySlug[slug]
	if !ok {
		return "", repository.ErrNotFound
	}
	return id, nil
}

func (m *mockServiceRepo) Create(ctx context.Context, svc *model.Service) error {
	svc.ID = "svc-" + svc.Slug
	m.byID[svc.ID] = svc
	m.idBySlug[svc.Slug] = svc.ID
	m.created = append(m.created, svc)
	return nil
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *model.Service) error {
	if _, ok := m.byID[svc.ID]; !ok {
		return repository.ErrNotFound
	}
	m.byID[svc.ID] = svc
	m.idBySlug[svc.Slug] = svc.ID
	return nil
}

func (m *mockServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func validServiceForm() validate.ServiceForm {
	return validate.ServiceForm{
		Name:        "Plumbing",
		Slug:        "plumbing",
		Description: "Repairs, installations and maintenance for residential plumbing.",
		Featured:    true,
		Order:       1,
	}
}

// ---------------------------------------------------------------------------
// Create / Update
// ---------------------------------------------------------------------------

func TestCatalogCreate_PersistsService(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewCatalogService(repo)

	created, fieldErrors, err := svc.Create(context.Background(), validServiceForm())
	if err != nil || fieldErrors != nil {
		t.Fatalf("unexpected failure: errors=%v err=%v", fieldErrors, err)
	}
	if created.Slug != "plumbing" || !created.Featured {
		t.Errorf("unexpected service: %+v", created)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected one persisted service, got %d", len(repo.created))
	}
}

func TestCatalogCreate_DuplicateSlugIsFieldError(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewCatalogService(repo)

	if _, fieldErrors, err := svc.Create(context.Background(), validServiceForm()); err != nil || fieldErrors != nil {
		t.Fatalf("seed create failed: errors=%v err=%v", fieldErrors, err)
	}

	_, fieldErrors, err := svc.Create(context.Background(), validServiceForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrors["slug"] != "A service with this slug already exists" {
		t.Errorf("expected slug conflict, got %v", fieldErrors)
	}
	if len(repo.created) != 1 {
		t.Errorf("conflicting create must not persist, got %d", len(repo.created))
	}
}

func TestCatalogUpdate_KeepingOwnSlugIsNotAConflict(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewCatalogService(repo)

	created, _, err := svc.Create(context.Background(), validServiceForm())
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	form := validServiceForm()
	form.Description = "Updated description with more detail about the service offering."
	updated, fieldErrors, err := svc.Update(context.Background(), created.ID, form)
	if err != nil || fieldErrors != nil {
		t.Fatalf("unexpected failure: errors=%v err=%v", fieldErrors, err)
	}
	if updated.Description != form.Description {
		t.Errorf("description not updated: %+v", updated)
	}
}

func TestCatalogCreate_InvalidFormIsRejected(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewCatalogService(repo)

	form := validServiceForm()
	form.Description = "short"
	_, fieldErrors, err := svc.Create(context.Background(), form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrors["description"] == "" {
		t.Errorf("expected description error, got %v", fieldErrors)
	}
	if len(repo.created) != 0 {
		t.Error("invalid form must not persist")
	}
}

func TestCatalogDelete_PropagatesNotFound(t *testing.T) {
	svc := NewCatalogService(newMockServiceRepo())
	if err := svc.Delete(context.Background(), "missing"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
