package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/acesite/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, slug, short_description, full_description, category,
	location, project_date, featured, published, tags, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.ShortDescription, &p.FullDescription,
		&p.Category, &p.Location, &p.ProjectDate, &p.Featured, &p.Published, &p.Tags,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns projects newest first with optional published/category/featured
// filters. Images are loaded for every returned project.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	var conditions []string
	var args []any

	if opts.PublishedOnly {
		conditions = append(conditions, "published = TRUE")
	}
	if opts.Category != "" {
		args = append(args, opts.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if opts.Featured != nil {
		args = append(args, *opts.Featured)
		conditions = append(conditions, "featured = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT ` + projectColumns + ` FROM projects` + where + ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range projects {
		if err := r.loadImages(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// GetByID returns a project regardless of published state (admin view).
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetBySlug returns a published project for the public site.
func (r *PgProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1 AND published = TRUE`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindIDBySlug returns the id holding slug, for uniqueness checks.
func (r *PgProjectRepository) FindIDBySlug(ctx context.Context, slug string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM projects WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

// Create inserts a project and its images.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO projects (id, title, slug, short_description, full_description, category,
		   location, project_date, featured, published, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Title, p.Slug, p.ShortDescription, p.FullDescription, p.Category,
		p.Location, p.ProjectDate, p.Featured, p.Published, p.Tags, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if err := insertImages(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update replaces the project's fields and recreates its image set, matching
// the admin form which always posts the full image list.
func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = time.Now().UTC()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE projects SET title = $1, slug = $2, short_description = $3, full_description = $4,
		   category = $5, location = $6, project_date = $7, featured = $8, published = $9,
		   tags = $10, updated_at = $11
		 WHERE id = $12`,
		p.Title, p.Slug, p.ShortDescription, p.FullDescription, p.Category, p.Location,
		p.ProjectDate, p.Featured, p.Published, p.Tags, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM project_images WHERE project_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertImages(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes a project; images cascade. ErrNotFound when absent.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Categories returns the distinct categories of published projects.
func (r *PgProjectRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM projects WHERE published = TRUE ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgProjectRepository) loadImages(ctx context.Context, p *model.Project) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, url, display_order FROM project_images
		 WHERE project_id = $1 ORDER BY display_order ASC`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img model.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.URL, &img.Order); err != nil {
			return err
		}
		p.Images = append(p.Images, img)
	}
	return rows.Err()
}

func insertImages(ctx context.Context, tx pgx.Tx, p *model.Project) error {
	for i := range p.Images {
		img := &p.Images[i]
		img.ID = uuid.NewString()
		img.ProjectID = p.ID
		img.Order = i
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_images (id, project_id, url, display_order)
			 VALUES ($1, $2, $3, $4)`,
			img.ID, img.ProjectID, img.URL, img.Order,
		); err != nil {
			return err
		}
	}
	return nil
}
