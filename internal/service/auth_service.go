package service

import (
	"context"
	"errors"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure, whether the email
// is unknown, the password is wrong or the account lacks the admin role.
// Callers must not distinguish the cases to the client.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates admin logins.
type AuthService interface {
	// Login verifies email/password against the users table and requires the
	// admin role. Returns the account on success.
	Login(ctx context.Context, email, password string) (*model.User, error)
}

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService creates an AuthService backed by the given user repository.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authServiceImpl{users: users}
}

// Login implements AuthService.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Role != model.RoleAdmin {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
