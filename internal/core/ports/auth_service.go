package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Role       string
	Faculty    string
	Department string
	Stream     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
