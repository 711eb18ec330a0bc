package service

import (
	"context"
	"errors"
	"strings"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/repository"
	"github.com/221-Batuhan/chat-ai-project/pkg/log"
)

// userServiceImpl implements UserService.
type userServiceImpl struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{repo: repo}
}

// Register registers a username idempotently: an existing username returns
// the stored record unchanged.
func (s *userServiceImpl) Register(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, bool, error) {
	l := log.Ctx(ctx)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, false, ErrUsernameRequired
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		l.Error().Err(err).Str(log.FieldUsername, username).Msg("failed to look up user")
		return nil, false, err
	}

	user := &domain.User{Username: username}
	if err := s.repo.Create(ctx, user); err != nil {
		// Lost a registration race; the unique index holds, return the winner.
		if errors.Is(err, repository.ErrUsernameExists) {
			existing, lookupErr := s.repo.GetByUsername(ctx, username)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return existing, false, nil
		}
		l.Error().Err(err).Str(log.FieldUsername, username).Msg("failed to create user")
		return nil, false, err
	}

	return user, true, nil
}

// List returns all users, newest id first.
func (s *userServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}
