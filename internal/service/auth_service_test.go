package service

import (
	"context"
	"errors"
	"testing"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byEmail map[string]*model.User
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func adminUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &model.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]*model.User{
		"admin@example.com": adminUser(t, "hunter22"),
	}}
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), "admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected user-1, got %q", user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]*model.User{
		"admin@example.com": adminUser(t, "hunter22"),
	}}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{byEmail: map[string]*model.User{}})

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NonAdminRejected(t *testing.T) {
	user := adminUser(t, "hunter22")
	user.Role = "viewer"
	svc := NewAuthService(&mockUserRepo{byEmail: map[string]*model.User{
		"admin@example.com": user,
	}})

	_, err := svc.Login(context.Background(), "admin@example.com", "hunter22")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for non-admin, got %v", err)
	}
}
