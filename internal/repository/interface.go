package repository

import (
	"context"
	"errors"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameExists  = errors.New("username already exists")
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	// Create persists a new message and fills in its id and creation time.
	Create(ctx context.Context, message *domain.Message) error
	// List returns all messages ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.Message, error)
	// UpdateSentiment overwrites the sentiment label/score pair of a message.
	UpdateSentiment(ctx context.Context, id int64, label string, score float64) error
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create persists a new user and fills in its id and creation time.
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername retrieves a user by its unique username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users ordered by id, newest first.
	List(ctx context.Context) ([]domain.User, error)
}
