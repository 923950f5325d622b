package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

func TestUserServiceGetByID(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	user := &domain.User{ID: uuid.New(), Name: "Ana"}
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
