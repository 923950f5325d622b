package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

const pollColumns = `p.id, p.title, p.description, p.created_by, p.is_active, p.allow_multiple_votes, p.expires_at, p.created_at, p.updated_at`

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner, poll *domain.Poll, extra ...any) error {
	dest := []any{
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.IsActive,
		&poll.AllowMultipleVotes, &poll.ExpiresAt, &poll.CreatedAt, &poll.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, description, created_by, is_active, allow_multiple_votes, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(ctx, queryPoll,
		poll.ID, poll.Title, poll.Description, poll.CreatedBy, poll.IsActive,
		poll.AllowMultipleVotes, poll.ExpiresAt, poll.CreatedAt, poll.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO poll_options (id, poll_id, text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range poll.Options {
		_, err = stmt.ExecContext(ctx, opt.ID, poll.ID, opt.Text, opt.Position, opt.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	query := `SELECT ` + pollColumns + ` FROM polls p WHERE p.id = $1`

	var poll domain.Poll
	if err := scanPoll(r.db.QueryRowContext(ctx, query, id), &poll); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) GetWithCreator(ctx context.Context, id uuid.UUID) (*domain.Poll, domain.Creator, error) {
	query := `
		SELECT ` + pollColumns + `, u.name, u.email
		FROM polls p
		JOIN users u ON u.id = p.created_by
		WHERE p.id = $1
	`

	var poll domain.Poll
	var creator domain.Creator
	if err := scanPoll(r.db.QueryRowContext(ctx, query, id), &poll, &creator.Name, &creator.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Creator{}, domain.ErrPollNotFound
		}
		return nil, domain.Creator{}, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, domain.Creator{}, err
	}
	poll.Options = options

	return &poll, creator, nil
}

func (r *pollRepository) ListActive(ctx context.Context) ([]domain.ActivePoll, error) {
	query := `
		SELECT ` + pollColumns + `, p.creator_name, p.option_count, p.total_votes
		FROM active_polls p
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active polls: %w", err)
	}
	defer rows.Close()

	polls := []domain.ActivePoll{}
	for rows.Next() {
		var ap domain.ActivePoll
		if err := scanPoll(rows, &ap.Poll, &ap.CreatorName, &ap.OptionCount, &ap.TotalVotes); err != nil {
			return nil, fmt.Errorf("failed to scan active poll: %w", err)
		}
		polls = append(polls, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating active polls: %w", err)
	}

	return polls, nil
}

func (r *pollRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.UserPoll, error) {
	query := `
		SELECT ` + pollColumns + `,
			(SELECT COUNT(*) FROM poll_options o WHERE o.poll_id = p.id)
		FROM polls p
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user polls: %w", err)
	}
	defer rows.Close()

	polls := []domain.UserPoll{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var up domain.UserPoll
		if err := scanPoll(rows, &up.Poll, &up.OptionCount); err != nil {
			return nil, fmt.Errorf("failed to scan user poll: %w", err)
		}
		index[up.ID] = len(polls)
		polls = append(polls, up)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user polls: %w", err)
	}

	if len(polls) == 0 {
		return polls, nil
	}

	voteRows, err := r.db.QueryContext(ctx, `
		SELECT v.poll_id, v.created_at
		FROM votes v
		JOIN polls p ON p.id = v.poll_id
		WHERE p.created_by = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user poll votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var pollID uuid.UUID
		var createdAt time.Time
		if err := voteRows.Scan(&pollID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		i, ok := index[pollID]
		if !ok {
			continue
		}
		polls[i].VoteTimes = append(polls[i].VoteTimes, createdAt)
		polls[i].VoteCount++
	}
	if err := voteRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return polls, nil
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPollNotFound
	}

	return nil
}

func (r *pollRepository) DeactivateExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE polls SET is_active = FALSE
		WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1
		RETURNING id
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate expired polls: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan poll id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deactivated polls: %w", err)
	}

	return ids, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	queryOptions := `
		SELECT id, poll_id, text, position, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY created_at ASC, position ASC
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.PollOption
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
