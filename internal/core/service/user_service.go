package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns the admin-facing UserService.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateRole reassigns a user's role. This is the only mutation path for
// roles after account creation.
func (s *userService) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrUnknownRole
	}
	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Str("role", string(role)).Msg("user role updated")
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
