package service

import (
	"context"
	"errors"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/validate"
)

const slugTakenMessage = "A project with this slug already exists"

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	return s.repo.List(ctx, opts)
}

func (s *projectServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Create validates the form, enforces slug uniqueness and persists.
func (s *projectServiceImpl) Create(ctx context.Context, form validate.ProjectForm) (*model.Project, map[string]string, error) {
	if form.Slug == "" {
		form.Slug = validate.Slugify(form.Title)
	}
	if fieldErrors := validate.ProjectFormErrors(form); fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	if conflict, err := s.slugTaken(ctx, form.Slug, ""); err != nil {
		return nil, nil, err
	} else if conflict {
		return nil, map[string]string{"slug": slugTakenMessage}, nil
	}

	p, err := projectFromForm(form)
	if err != nil {
		return nil, map[string]string{"project_date": "Please enter a valid date (YYYY-MM-DD)"}, nil
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

// Update validates the form, enforces slug uniqueness against other projects
// and replaces the stored project.
func (s *projectServiceImpl) Update(ctx context.Context, id string, form validate.ProjectForm) (*model.Project, map[string]string, error) {
	if form.Slug == "" {
		form.Slug = validate.Slugify(form.Title)
	}
	if fieldErrors := validate.ProjectFormErrors(form); fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	if conflict, err := s.slugTaken(ctx, form.Slug, id); err != nil {
		return nil, nil, err
	} else if conflict {
		return nil, map[string]string{"slug": slugTakenMessage}, nil
	}

	p, err := projectFromForm(form)
	if err != nil {
		return nil, map[string]string{"project_date": "Please enter a valid date (YYYY-MM-DD)"}, nil
	}
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ToggleFeatured flips the featured flag and returns the new value.
func (s *projectServiceImpl) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	p.Featured = !p.Featured
	if err := s.repo.Update(ctx, p); err != nil {
		return false, err
	}
	return p.Featured, nil
}

// slugTaken reports whether slug belongs to a project other than excludeID.
func (s *projectServiceImpl) slugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	id, err := s.repo.FindIDBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id != excludeID, nil
}

func projectFromForm(form validate.ProjectForm) (*model.Project, error) {
	p := &model.Project{
		Title:            form.Title,
		Slug:             form.Slug,
		ShortDescription: form.ShortDescription,
		FullDescription:  nilIfEmpty(form.FullDescription),
		Category:         form.Category,
		Location:         nilIfEmpty(form.Location),
		Featured:         form.Featured,
		Published:        form.Published,
		Tags:             form.Tags,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if form.ProjectDate != "" {
		d, err := time.Parse("2006-01-02", form.ProjectDate)
		if err != nil {
			return nil, err
		}
		p.ProjectDate = &d
	}
	for _, url := range form.ImageURLs {
		p.Images = append(p.Images, model.ProjectImage{URL: url})
	}
	return p, nil
}
