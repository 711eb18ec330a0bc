package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/221-Batuhan/chat-ai-project/internal/cache"
	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/repository"
	"github.com/221-Batuhan/chat-ai-project/pkg/log"
)

// messageServiceImpl implements MessageService.
type messageServiceImpl struct {
	repo     repository.MessageRepository
	enricher Enricher
	cache    cache.MessageCache
	cacheTTL time.Duration

	// Tracks in-flight background enrichments; tests wait on it.
	enrichWG sync.WaitGroup
}

// NewMessageService creates a new message service.
func NewMessageService(repo repository.MessageRepository, enricher Enricher, messageCache cache.MessageCache, cacheTTL time.Duration) MessageService {
	return &messageServiceImpl{
		repo:     repo,
		enricher: enricher,
		cache:    messageCache,
		cacheTTL: cacheTTL,
	}
}

// Create validates and persists a message, then fires best-effort sentiment
// enrichment in the background. The response record is fully committed
// before enrichment starts; readers see the message immediately with empty
// sentiment fields and pick up the label/score on a later poll.
func (s *messageServiceImpl) Create(ctx context.Context, req *domain.CreateMessageRequest) (*domain.Message, error) {
	l := log.Ctx(ctx)

	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}

	nickname := req.Nickname
	if strings.TrimSpace(nickname) == "" {
		nickname = domain.DefaultNickname
	}

	message := &domain.Message{
		Nickname: nickname,
		Text:     req.Text,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		l.Error().Err(err).Msg("failed to create message")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		l.Warn().Err(err).Msg("failed to invalidate message cache")
	}

	// Detached from the request context: an abandoned client connection
	// must not cancel enrichment, and the response must not wait for it.
	enrichCtx := log.WithLogger(context.Background(), l.With().Int64(log.FieldMessageID, message.ID).Logger())
	s.enrichWG.Add(1)
	go func() {
		defer s.enrichWG.Done()
		s.enrich(enrichCtx, message.ID, message.Text)
	}()

	return message, nil
}

// enrich drives the sentiment client and persists a successful prediction.
// All failures are logged and absorbed.
func (s *messageServiceImpl) enrich(ctx context.Context, id int64, text string) {
	l := log.Ctx(ctx)

	// Each outbound call inside the enricher is individually bounded, and
	// the candidate list is finite, so the flow terminates without an
	// overall deadline.
	res, ok := s.enricher.Enrich(ctx, text)
	if !ok {
		return
	}

	if err := s.repo.UpdateSentiment(ctx, id, res.Label, res.Score); err != nil {
		l.Error().Err(err).Msg("failed to persist sentiment")
		return
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		l.Warn().Err(err).Msg("failed to invalidate message cache")
	}

	l.Info().Str("sentiment", res.Label).Float64("score", res.Score).Msg("message enriched")
}

// List returns all messages newest first, read through the cache.
func (s *messageServiceImpl) List(ctx context.Context) ([]domain.Message, error) {
	l := log.Ctx(ctx)

	if messages, err := s.cache.Get(ctx); err == nil {
		return messages, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		l.Warn().Err(err).Msg("message cache read failed")
	}

	messages, err := s.repo.List(ctx)
	if err != nil {
		l.Error().Err(err).Msg("failed to list messages")
		return nil, err
	}

	if err := s.cache.Set(ctx, messages, s.cacheTTL); err != nil {
		l.Warn().Err(err).Msg("failed to populate message cache")
	}

	return messages, nil
}
