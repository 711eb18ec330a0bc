package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.MessageModel{}, &domain.UserModel{}))
	return db
}

func TestMessageCreateSetsIDAndTimestamp(t *testing.T) {
	repo := NewGormMessageRepository(testDB(t))
	ctx := context.Background()

	message := &domain.Message{Nickname: "anon", Text: "hello"}
	require.NoError(t, repo.Create(ctx, message))

	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
	assert.Empty(t, message.Sentiment)
	assert.Zero(t, message.SentimentScore)
}

func TestMessageListNewestFirst(t *testing.T) {
	repo := NewGormMessageRepository(testDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// Inserted out of order on purpose.
	for _, offset := range []time.Duration{time.Minute, 3 * time.Minute, 2 * time.Minute} {
		msg := &domain.Message{
			Nickname:  "anon",
			Text:      fmt.Sprintf("at +%s", offset),
			CreatedAt: base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, msg))
	}

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "at +3m0s", messages[0].Text)
	assert.Equal(t, "at +2m0s", messages[1].Text)
	assert.Equal(t, "at +1m0s", messages[2].Text)
}

func TestMessageUpdateSentiment(t *testing.T) {
	repo := NewGormMessageRepository(testDB(t))
	ctx := context.Background()

	message := &domain.Message{Nickname: "anon", Text: "hello"}
	require.NoError(t, repo.Create(ctx, message))

	require.NoError(t, repo.UpdateSentiment(ctx, message.ID, "positive", 0.97))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "positive", messages[0].Sentiment)
	assert.Equal(t, 0.97, messages[0].SentimentScore)
}

func TestMessageUpdateSentimentMissingRow(t *testing.T) {
	repo := NewGormMessageRepository(testDB(t))

	err := repo.UpdateSentiment(context.Background(), 42, "positive", 0.9)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestUserCreateAndGetByUsername(t *testing.T) {
	repo := NewGormUserRepository(testDB(t))
	ctx := context.Background()

	user := &domain.User{Username: "batuhan"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.GetByUsername(ctx, "batuhan")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := NewGormUserRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "batuhan"}))

	err := repo.Create(ctx, &domain.User{Username: "batuhan"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserListNewestIDFirst(t *testing.T) {
	repo := NewGormUserRepository(testDB(t))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &domain.User{Username: name}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
	assert.Equal(t, "first", users[2].Username)
}
