package ports

import (
	"context"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
