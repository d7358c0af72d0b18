package repository

import (
	"context"
	"errors"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSettingsRepository is the PostgreSQL implementation of SettingsRepository.
// The table holds at most one row, keyed by model.SettingsID.
type PgSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPgSettingsRepository creates a PgSettingsRepository backed by the given pool.
func NewPgSettingsRepository(pool *pgxpool.Pool) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool}
}

var _ SettingsRepository = (*PgSettingsRepository)(nil)

// Get returns the settings row, or ErrNotFound when it was never saved.
func (r *PgSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	var s model.SiteSettings
	err := r.pool.QueryRow(ctx,
		`SELECT id, business_name, tagline, intro_text, phone, email, hours, service_area, address,
		   facebook_url, instagram_url, twitter_url, linkedin_url, youtube_url,
		   hero_headline, hero_subheadline, hero_cta1_text, hero_cta1_link,
		   hero_cta2_text, hero_cta2_link, hero_image_url,
		   about_headline, about_content, about_image_url, updated_at
		 FROM site_settings WHERE id = $1`, model.SettingsID,
	).Scan(&s.ID, &s.BusinessName, &s.Tagline, &s.IntroText, &s.Phone, &s.Email, &s.Hours,
		&s.ServiceArea, &s.Address,
		&s.FacebookURL, &s.InstagramURL, &s.TwitterURL, &s.LinkedinURL, &s.YoutubeURL,
		&s.HeroHeadline, &s.HeroSubheadline, &s.HeroCta1Text, &s.HeroCta1Link,
		&s.HeroCta2Text, &s.HeroCta2Link, &s.HeroImageURL,
		&s.AboutHeadline, &s.AboutContent, &s.AboutImageURL, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates or replaces the settings row.
func (r *PgSettingsRepository) Upsert(ctx context.Context, s *model.SiteSettings) error {
	s.ID = model.SettingsID
	s.UpdatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO site_settings (id, business_name, tagline, intro_text, phone, email, hours,
		   service_area, address, facebook_url, instagram_url, twitter_url, linkedin_url, youtube_url,
		   hero_headline, hero_subheadline, hero_cta1_text, hero_cta1_link, hero_cta2_text,
		   hero_cta2_link, hero_image_url, about_headline, about_content, about_image_url, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		   $19, $20, $21, $22, $23, $24, $25)
		 ON CONFLICT (id) DO UPDATE SET
		   business_name = EXCLUDED.business_name,
		   tagline = EXCLUDED.tagline,
		   intro_text = EXCLUDED.intro_text,
		   phone = EXCLUDED.phone,
		   email = EXCLUDED.email,
		   hours = EXCLUDED.hours,
		   service_area = EXCLUDED.service_area,
		   address = EXCLUDED.address,
		   facebook_url = EXCLUDED.facebook_url,
		   instagram_url = EXCLUDED.instagram_url,
		   twitter_url = EXCLUDED.twitter_url,
		   linkedin_url = EXCLUDED.linkedin_url,
		   youtube_url = EXCLUDED.youtube_url,
		   hero_headline = EXCLUDED.hero_headline,
		   hero_subheadline = EXCLUDED.hero_subheadline,
		   hero_cta1_text = EXCLUDED.hero_cta1_text,
		   hero_cta1_link = EXCLUDED.hero_cta1_link,
		   hero_cta2_text = EXCLUDED.hero_cta2_text,
		   hero_cta2_link = EXCLUDED.hero_cta2_link,
		   hero_image_url = EXCLUDED.hero_image_url,
		   about_headline = EXCLUDED.about_headline,
		   about_content = EXCLUDED.about_content,
		   about_image_url = EXCLUDED.about_image_url,
		   updated_at = EXCLUDED.updated_at`,
		s.ID, s.BusinessName, s.Tagline, s.IntroText, s.Phone, s.Email, s.Hours,
		s.ServiceArea, s.Address, s.FacebookURL, s.InstagramURL, s.TwitterURL,
		s.LinkedinURL, s.YoutubeURL, s.HeroHeadline, s.HeroSubheadline,
		s.HeroCta1Text, s.HeroCta1Link, s.HeroCta2Text, s.HeroCta2Link,
		s.HeroImageURL, s.AboutHeadline, s.AboutContent, s.AboutImageURL, s.UpdatedAt,
	)
	return err
}
