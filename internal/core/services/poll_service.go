package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type pollService struct {
	log        *slog.Logger
	repo       ports.PollRepository
	resultRepo ports.PollResultRepository
	now        func() time.Time
}

func NewPollService(log *slog.Logger, repo ports.PollRepository, resultRepo ports.PollResultRepository) ports.PollService {
	return &pollService{
		log:        log,
		repo:       repo,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, session domain.Session, input ports.CreatePollInput) (uuid.UUID, error) {
	const op = "pollService.Create"

	userID, ok := session.UserID()
	if !ok {
		return uuid.Nil, fmt.Errorf("%w to create a poll", domain.ErrUnauthenticated)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return uuid.Nil, domain.ErrTitleRequired
	}

	now := s.now()
	if input.ExpiresAt != nil && !input.ExpiresAt.After(now) {
		return uuid.Nil, domain.ErrExpiresInPast
	}

	pollID := uuid.New()
	poll := &domain.Poll{
		ID:                 pollID,
		Title:              title,
		CreatedBy:          userID,
		IsActive:           true,
		AllowMultipleVotes: input.AllowMultipleVotes,
		ExpiresAt:          input.ExpiresAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		poll.Description = &desc
	}

	for _, optText := range input.Options {
		optText = strings.TrimSpace(optText)
		if optText == "" {
			continue
		}
		if utf8.RuneCountInString(optText) > domain.MaxOptionLength {
			return uuid.Nil, domain.ErrOptionTooLong
		}
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    pollID,
			Text:      optText,
			Position:  len(poll.Options),
			CreatedAt: now,
		})
	}

	if len(poll.Options) < domain.MinPollOptions {
		return uuid.Nil, domain.ErrNotEnoughOptions
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("poll created",
		slog.String("op", op),
		slog.String("poll_id", pollID.String()),
		slog.Int("options", len(poll.Options)),
	)

	return pollID, nil
}

func (s *pollService) ListActive(ctx context.Context) ([]domain.ActivePoll, error) {
	const op = "pollService.ListActive"

	polls, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if polls == nil {
		polls = []domain.ActivePoll{}
	}

	return polls, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.PollDetail, error) {
	const op = "pollService.GetPoll"

	// An id that cannot be parsed names no poll.
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrPollNotFound
	}

	poll, creator, err := s.repo.GetWithCreator(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Missing vote counts degrade to zero instead of failing the request.
	stats, err := s.resultRepo.GetPollOptionStats(ctx, pollID)
	if err != nil {
		s.log.Warn("failed to fetch vote counts",
			slog.String("op", op),
			slog.String("poll_id", pollID.String()),
			slog.Any("error", err),
		)
		stats = nil
	}

	return domain.NewPollDetail(*poll, creator, poll.Options, stats), nil
}

func (s *pollService) Delete(ctx context.Context, session domain.Session, id string) error {
	const op = "pollService.Delete"

	userID, ok := session.UserID()
	if !ok {
		return fmt.Errorf("%w to delete a poll", domain.ErrUnauthenticated)
	}

	pollID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrPollNotFound
	}

	poll, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if poll.CreatedBy != userID {
		return domain.ErrNotPollCreator
	}

	if err := s.repo.Delete(ctx, pollID); err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("poll deleted", slog.String("op", op), slog.String("poll_id", pollID.String()))
	return nil
}

func (s *pollService) Dashboard(ctx context.Context, session domain.Session) (*domain.Dashboard, error) {
	const op = "pollService.Dashboard"

	userID, ok := session.UserID()
	if !ok {
		return nil, fmt.Errorf("%w to view your polls", domain.ErrUnauthenticated)
	}

	polls, err := s.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if polls == nil {
		polls = []domain.UserPoll{}
	}

	return &domain.Dashboard{
		UserID: userID,
		Polls:  polls,
		Stats:  domain.ComputeDashboardStats(polls, s.now()),
	}, nil
}
