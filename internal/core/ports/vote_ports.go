package ports

import (
	"context"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote inserts the vote. It returns domain.ErrAlreadyVoted when the
	// vote's dedupe key is already taken.
	SaveVote(ctx context.Context, vote *domain.Vote) error
}

// VoteInput carries the raw ids from the request. They are parsed in the
// order the vote checks run.
type VoteInput struct {
	PollID   string
	OptionID string
}

type VoteService interface {
	Vote(ctx context.Context, session domain.Session, input VoteInput) error
}
