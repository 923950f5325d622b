package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type expirationService struct {
	log      *slog.Logger
	pollRepo ports.PollRepository
	now      func() time.Time
}

func NewExpirationService(log *slog.Logger, pollRepo ports.PollRepository) ports.ExpirationService {
	return &expirationService{
		log:      log,
		pollRepo: pollRepo,
		now:      time.Now,
	}
}

func (s *expirationService) DeactivateExpired(ctx context.Context) (int, error) {
	const op = "expirationService.DeactivateExpired"

	ids, err := s.pollRepo.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, id := range ids {
		s.log.Debug("poll deactivated", slog.String("op", op), slog.String("poll_id", id.String()))
	}

	return len(ids), nil
}
