package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockPollRepo struct {
	mock.Mock
}

func (m *mockPollRepo) Save(ctx context.Context, poll *domain.Poll) error {
	return m.Called(ctx, poll).Error(0)
}

func (m *mockPollRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollRepo) GetWithCreator(ctx context.Context, id uuid.UUID) (*domain.Poll, domain.Creator, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Get(1).(domain.Creator), args.Error(2)
}

func (m *mockPollRepo) ListActive(ctx context.Context) ([]domain.ActivePoll, error) {
	args := m.Called(ctx)
	polls, _ := args.Get(0).([]domain.ActivePoll)
	return polls, args.Error(1)
}

func (m *mockPollRepo) ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.UserPoll, error) {
	args := m.Called(ctx, userID)
	polls, _ := args.Get(0).([]domain.UserPoll)
	return polls, args.Error(1)
}

func (m *mockPollRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPollRepo) DeactivateExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, now)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

type mockResultRepo struct {
	mock.Mock
}

func (m *mockResultRepo) GetPollOptionStats(ctx context.Context, pollID uuid.UUID) ([]domain.PollOptionStats, error) {
	args := m.Called(ctx, pollID)
	stats, _ := args.Get(0).([]domain.PollOptionStats)
	return stats, args.Error(1)
}

type mockVoteRepo struct {
	mock.Mock
}

func (m *mockVoteRepo) SaveVote(ctx context.Context, vote *domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthRepo) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*domain.RefreshToken)
	return token, args.Error(1)
}

func (m *mockAuthRepo) RevokeRefreshToken(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	args := m.Called(ctx, token, clientID)
	payload, _ := args.Get(0).(*ports.TokenPayload)
	return payload, args.Error(1)
}
