package cache

import (
	"context"
	"time"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
)

// NoopMessageCache is used when caching is disabled. Every read misses.
type NoopMessageCache struct{}

func NewNoopMessageCache() *NoopMessageCache {
	return &NoopMessageCache{}
}

func (*NoopMessageCache) Get(context.Context) ([]domain.Message, error) {
	return nil, ErrCacheMiss
}

func (*NoopMessageCache) Set(context.Context, []domain.Message, time.Duration) error {
	return nil
}

func (*NoopMessageCache) Invalidate(context.Context) error {
	return nil
}

func (*NoopMessageCache) Close() error {
	return nil
}
