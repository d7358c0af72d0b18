package repository

import (
	"context"

	"github.com/acesite/backend/internal/model"
)

// UserRepository is the persistence contract for admin accounts.
type UserRepository interface {
	// GetByEmail looks an account up by lowercase email. Returns ErrNotFound
	// when no such account exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
