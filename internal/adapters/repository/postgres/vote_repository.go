package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, poll_id, option_id, user_id, dedupe_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (poll_id, user_id, dedupe_key) DO NOTHING
	`
	dedupeKey := sql.NullString{String: vote.DedupeKey, Valid: vote.DedupeKey != ""}

	res, err := r.db.ExecContext(ctx, query, vote.ID, vote.PollID, vote.OptionID, vote.UserID, dedupeKey, vote.CreatedAt)
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return domain.ErrInvalidOption
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyVoted
	}

	return nil
}
