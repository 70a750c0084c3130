package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// UserService implements directory and profile use cases.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id, actorID string, actorRole domain.Role, update ports.ProfileUpdate) (*domain.User, error) {
	if actorID != id && actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	updated, err := s.users.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", id).Str("actor", actorID).Msg("profile updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user", id).Msg("user deleted")
	return nil
}
