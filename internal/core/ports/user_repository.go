package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// UserRepository defines the interface for the durable user directory.
// The directory enforces username uniqueness at creation time.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
