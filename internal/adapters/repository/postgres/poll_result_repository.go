package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type pollResultRepository struct {
	db *sql.DB
}

func NewPollResultRepository(db *sql.DB) ports.PollResultRepository {
	return &pollResultRepository{
		db: db,
	}
}

func (r *pollResultRepository) GetPollOptionStats(ctx context.Context, pollID uuid.UUID) ([]domain.PollOptionStats, error) {
	query := `
		SELECT option_id, poll_id, option_text, vote_count
		FROM poll_results
		WHERE poll_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll results: %w", err)
	}
	defer rows.Close()

	var stats []domain.PollOptionStats
	for rows.Next() {
		var s domain.PollOptionStats
		if err := rows.Scan(&s.OptionID, &s.PollID, &s.OptionText, &s.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan poll result: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll results: %w", err)
	}

	return stats, nil
}
