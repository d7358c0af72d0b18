package model

import "time"

// Service is one entry of the services catalog (plumbing, renovations, ...).
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        *string   `json:"icon,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
