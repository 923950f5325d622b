package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type voteService struct {
	log      *slog.Logger
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
	scope    domain.VoteScope
	now      func() time.Time
}

func NewVoteService(log *slog.Logger, pollRepo ports.PollRepository, voteRepo ports.VoteRepository, scope domain.VoteScope) ports.VoteService {
	if scope == "" {
		scope = domain.VoteScopeOption
	}
	return &voteService{
		log:      log,
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		scope:    scope,
		now:      time.Now,
	}
}

// Vote records the caller's vote. Duplicates are rejected by the vote
// repository through the dedupe key, not by a prior lookup.
func (s *voteService) Vote(ctx context.Context, session domain.Session, input ports.VoteInput) error {
	const op = "voteService.Vote"

	userID, ok := session.UserID()
	if !ok {
		return fmt.Errorf("%w to vote", domain.ErrUnauthenticated)
	}

	pollID, err := uuid.Parse(input.PollID)
	if err != nil {
		return domain.ErrPollNotFound
	}

	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	if poll.IsExpired(now) {
		return domain.ErrPollExpired
	}
	if !poll.IsActive {
		return domain.ErrPollInactive
	}
	optionID, err := uuid.Parse(input.OptionID)
	if err != nil || !poll.HasOption(optionID) {
		return domain.ErrInvalidOption
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    userID,
		DedupeKey: s.scope.DedupeKey(poll, optionID),
		CreatedAt: now,
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("vote recorded",
		slog.String("op", op),
		slog.String("poll_id", pollID.String()),
		slog.String("option_id", optionID.String()),
	)
	return nil
}
