package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

type PollRepository interface {
	// Save stores the poll and its options atomically.
	Save(ctx context.Context, poll *domain.Poll) error
	// GetByID returns the poll with its options ordered by creation time.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetWithCreator(ctx context.Context, id uuid.UUID) (*domain.Poll, domain.Creator, error)
	ListActive(ctx context.Context) ([]domain.ActivePoll, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.UserPoll, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeactivateExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type CreatePollInput struct {
	Title              string
	Description        string
	Options            []string
	AllowMultipleVotes bool
	ExpiresAt          *time.Time
}

type PollService interface {
	Create(ctx context.Context, session domain.Session, input CreatePollInput) (uuid.UUID, error)
	ListActive(ctx context.Context) ([]domain.ActivePoll, error)
	GetPoll(ctx context.Context, id string) (*domain.PollDetail, error)
	Delete(ctx context.Context, session domain.Session, id string) error
	Dashboard(ctx context.Context, session domain.Session) (*domain.Dashboard, error)
}
