package service

import (
	"context"
	"errors"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/validate"
)

// SettingsService is the business logic for the single site-settings row.
type SettingsService interface {
	// Get returns the saved settings, or the built-in defaults when the row
	// was never saved.
	Get(ctx context.Context) (*model.SiteSettings, error)
	// Update validates and upserts the settings row. A non-nil field error
	// map means the input was rejected.
	Update(ctx context.Context, form validate.SettingsForm) (map[string]string, error)
}

// settingsServiceImpl is the production implementation of SettingsService.
type settingsServiceImpl struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

// Get falls back to the defaults when no row exists yet, so the public site
// always has content to render.
func (s *settingsServiceImpl) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.DefaultSiteSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update validates and upserts. Empty optional strings are stored as NULL.
func (s *settingsServiceImpl) Update(ctx context.Context, form validate.SettingsForm) (map[string]string, error) {
	if fieldErrors := validate.SettingsFormErrors(form); fieldErrors != nil {
		return fieldErrors, nil
	}

	settings := &model.SiteSettings{
		BusinessName:    form.BusinessName,
		Tagline:         nilIfEmpty(form.Tagline),
		IntroText:       nilIfEmpty(form.IntroText),
		Phone:           form.Phone,
		Email:           form.Email,
		Hours:           nilIfEmpty(form.Hours),
		ServiceArea:     nilIfEmpty(form.ServiceArea),
		Address:         nilIfEmpty(form.Address),
		FacebookURL:     nilIfEmpty(form.FacebookURL),
		InstagramURL:    nilIfEmpty(form.InstagramURL),
		TwitterURL:      nilIfEmpty(form.TwitterURL),
		LinkedinURL:     nilIfEmpty(form.LinkedinURL),
		YoutubeURL:      nilIfEmpty(form.YoutubeURL),
		HeroHeadline:    form.HeroHeadline,
		HeroSubheadline: nilIfEmpty(form.HeroSubheadline),
		HeroCta1Text:    nilIfEmpty(form.HeroCta1Text),
		HeroCta1Link:    nilIfEmpty(form.HeroCta1Link),
		HeroCta2Text:    nilIfEmpty(form.HeroCta2Text),
		HeroCta2Link:    nilIfEmpty(form.HeroCta2Link),
		HeroImageURL:    nilIfEmpty(form.HeroImageURL),
		AboutHeadline:   nilIfEmpty(form.AboutHeadline),
		AboutContent:    nilIfEmpty(form.AboutContent),
		AboutImageURL:   nilIfEmpty(form.AboutImageURL),
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return nil, nil
}
