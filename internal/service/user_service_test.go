package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/repository"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	return NewUserService(repository.NewGormUserRepository(testDB(t)))
}

func TestRegisterCreatesUser(t *testing.T) {
	svc := newUserService(t)

	user, created, err := svc.Register(context.Background(), &domain.RegisterUserRequest{Username: "batuhan"})
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "batuhan", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterIsIdempotent(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, created, err := svc.Register(ctx, &domain.RegisterUserRequest{Username: "batuhan"})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Register(ctx, &domain.RegisterUserRequest{Username: "batuhan"})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterTrimsUsername(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, _, err := svc.Register(ctx, &domain.RegisterUserRequest{Username: "batuhan"})
	require.NoError(t, err)

	second, created, err := svc.Register(ctx, &domain.RegisterUserRequest{Username: "  batuhan  "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegisterRejectsBlankUsername(t *testing.T) {
	svc := newUserService(t)

	for _, username := range []string{"", "   "} {
		_, _, err := svc.Register(context.Background(), &domain.RegisterUserRequest{Username: username})
		assert.ErrorIs(t, err, ErrUsernameRequired)
	}
}
