package http

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockPollService struct {
	mock.Mock
}

func (m *mockPollService) Create(ctx context.Context, session domain.Session, input ports.CreatePollInput) (uuid.UUID, error) {
	args := m.Called(ctx, session, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockPollService) ListActive(ctx context.Context) ([]domain.ActivePoll, error) {
	args := m.Called(ctx)
	polls, _ := args.Get(0).([]domain.ActivePoll)
	return polls, args.Error(1)
}

func (m *mockPollService) GetPoll(ctx context.Context, id string) (*domain.PollDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*domain.PollDetail)
	return detail, args.Error(1)
}

func (m *mockPollService) Delete(ctx context.Context, session domain.Session, id string) error {
	return m.Called(ctx, session, id).Error(0)
}

func (m *mockPollService) Dashboard(ctx context.Context, session domain.Session) (*domain.Dashboard, error) {
	args := m.Called(ctx, session)
	dashboard, _ := args.Get(0).(*domain.Dashboard)
	return dashboard, args.Error(1)
}

type mockVoteService struct {
	mock.Mock
}

func (m *mockVoteService) Vote(ctx context.Context, session domain.Session, input ports.VoteInput) error {
	return m.Called(ctx, session, input).Error(0)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, error) {
	args := m.Called(ctx, input)
	pair, _ := args.Get(0).(*ports.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	args := m.Called(ctx, email, password)
	pair, _ := args.Get(0).(*ports.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthService) LoginWithGoogle(ctx context.Context, googleToken string) (*ports.TokenPair, error) {
	args := m.Called(ctx, googleToken)
	pair, _ := args.Get(0).(*ports.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	pair, _ := args.Get(0).(*ports.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *mockAuthService) Authenticate(ctx context.Context, accessToken string) (domain.Session, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(domain.Session), args.Error(1)
}
