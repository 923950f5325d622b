package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(db)

	user := &domain.User{
		Email:        strings.ToLower(gofakeit.Email()),
		Name:         gofakeit.Name(),
		PasswordHash: []byte("hash"),
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, []byte("hash"), byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)

	dup := &domain.User{Email: user.Email, Name: gofakeit.Name()}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrUserExists)
}

func TestUserRepositoryWithoutPassword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(db)

	user := createUser(t, db)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.PasswordHash)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAuthRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := postgres.NewAuthRepository(db)

	user := createUser(t, db)
	token := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: gofakeit.UUID(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.StoreRefreshToken(ctx, token))
	assert.NotEqual(t, uuid.Nil, token.ID)

	got, err := repo.GetRefreshTokenByHash(ctx, token.TokenHash)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.UserID)
	assert.False(t, got.Revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, token.ID.String()))

	got, err = repo.GetRefreshTokenByHash(ctx, token.TokenHash)
	require.NoError(t, err)
	assert.True(t, got.Revoked)

	_, err = repo.GetRefreshTokenByHash(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
