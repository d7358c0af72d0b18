package model

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	ShortDescription string         `json:"short_description"`
	FullDescription  *string        `json:"full_description,omitempty"`
	Category         string         `json:"category"`
	Location         *string        `json:"location,omitempty"`
	ProjectDate      *time.Time     `json:"project_date,omitempty"`
	Featured         bool           `json:"featured"`
	Published        bool           `json:"published"`
	Tags             []string       `json:"tags"`
	Images           []ProjectImage `json:"images"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ProjectImage is one gallery image of a project, ordered by Order ascending.
type ProjectImage struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	URL       string `json:"url"`
	Order     int    `json:"order"`
}

// ProjectListOptions carries filters for listing projects.
type ProjectListOptions struct {
	// PublishedOnly restricts results to published projects (public site).
	PublishedOnly bool
	Category      string
	// Featured filters by featured flag. nil returns all.
	Featured *bool
	Limit    int
	Offset   int
}
