package ports

import (
	"context"

	"github.com/limkokwing/luct-reporting/internal/core/domain"
)

// UserRepository is the credential store. FindByID serves the per-request
// re-validation performed by the auth middleware and is the only
// authoritative source for a caller's current role.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
