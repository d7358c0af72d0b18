package repository

import (
	"context"
	"errors"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository backed by the given pool.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

const serviceColumns = `id, name, slug, description, icon, image_url, featured, display_order, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Icon, &s.ImageURL,
		&s.Featured, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns services ordered by display order ascending.
func (r *PgServiceRepository) List(ctx context.Context, featuredOnly bool) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if featuredOnly {
		query += ` WHERE featured = TRUE`
	}
	query += ` ORDER BY display_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetByID returns a single service or ErrNotFound.
func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// FindIDBySlug returns the id holding slug, for uniqueness checks.
func (r *PgServiceRepository) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM services WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

// Create inserts a service.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	svc.ID = uuid.NewString()
	now := time.Now().UTC()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (id, name, slug, description, icon, image_url, featured, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		svc.ID, svc.Name, svc.Slug, svc.Description, svc.Icon, svc.ImageURL,
		svc.Featured, svc.Order, svc.CreatedAt, svc.UpdatedAt,
	)
	return err
}

// Update replaces a service's fields. ErrNotFound when absent.
func (r *PgServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	svc.UpdatedAt = time.Now().UTC()

	tag, err := r.pool.Exec(ctx,
		`UPDATE services SET name = $1, slug = $2, description = $3, icon = $4, image_url = $5,
		   featured = $6, display_order = $7, updated_at = $8
		 WHERE id = $9`,
		svc.Name, svc.Slug, svc.Description, svc.Icon, svc.ImageURL,
		svc.Featured, svc.Order, svc.UpdatedAt, svc.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a service. ErrNotFound when absent.
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
