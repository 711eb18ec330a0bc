package service

import (
	"context"
	"errors"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/sentiment"
)

var (
	ErrTextRequired     = errors.New("message text is required")
	ErrUsernameRequired = errors.New("username is required")
)

// MessageService defines message business operations.
type MessageService interface {
	// Create validates and persists a message, then kicks off best-effort
	// sentiment enrichment in the background. The returned record always has
	// empty sentiment fields.
	Create(ctx context.Context, req *domain.CreateMessageRequest) (*domain.Message, error)
	// List returns all messages, newest first.
	List(ctx context.Context) ([]domain.Message, error)
}

// UserService defines user business operations.
type UserService interface {
	// Register creates a user or returns the existing record for the
	// username. The boolean reports whether a new record was created.
	Register(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, bool, error)
	// List returns all users, newest id first.
	List(ctx context.Context) ([]domain.User, error)
}

// Enricher obtains a sentiment prediction for a message text. Implemented by
// sentiment.Client.
type Enricher interface {
	Enrich(ctx context.Context, text string) (sentiment.Result, bool)
}
