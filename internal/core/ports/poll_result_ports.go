package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

type PollResultRepository interface {
	GetPollOptionStats(ctx context.Context, pollID uuid.UUID) ([]domain.PollOptionStats, error)
}

type ExpirationService interface {
	// DeactivateExpired marks every expired poll inactive and returns how many changed.
	DeactivateExpired(ctx context.Context) (int, error)
}
