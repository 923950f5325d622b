package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

// newTestDB starts a throwaway PostgreSQL, applies the migrations and
// returns a connection to it.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

func createUser(t *testing.T, db *sql.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		Email: gofakeit.Email(),
		Name:  gofakeit.Name(),
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func newPoll(createdBy uuid.UUID, createdAt time.Time, options ...string) *domain.Poll {
	poll := &domain.Poll{
		ID:        uuid.New(),
		Title:     gofakeit.Question(),
		CreatedBy: createdBy,
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	for i, text := range options {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    poll.ID,
			Text:      text,
			Position:  i,
			CreatedAt: createdAt,
		})
	}
	return poll
}

func savePoll(t *testing.T, db *sql.DB, poll *domain.Poll) *domain.Poll {
	t.Helper()
	require.NoError(t, postgres.NewPollRepository(db).Save(context.Background(), poll))
	return poll
}

func newVote(poll *domain.Poll, optionID, userID uuid.UUID, dedupeKey string, at time.Time) *domain.Vote {
	return &domain.Vote{
		ID:        uuid.New(),
		PollID:    poll.ID,
		OptionID:  optionID,
		UserID:    userID,
		DedupeKey: dedupeKey,
		CreatedAt: at,
	}
}
