package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// Create stores the user, returning domain.ErrUserExists on a taken email.
	Create(ctx context.Context, user *domain.User) error
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
