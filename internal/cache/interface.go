package cache

import (
	"context"
	"errors"
	"time"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// MessageCache caches the newest-first message listing. Implementations must
// be safe for concurrent use.
type MessageCache interface {
	Get(ctx context.Context) ([]domain.Message, error)
	Set(ctx context.Context, messages []domain.Message, ttl time.Duration) error
	// Invalidate drops the cached listing after a write.
	Invalidate(ctx context.Context) error
	Close() error
}
