package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type teamService struct {
	repo  ports.TeamRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewTeamService returns a TeamService implementation.
func NewTeamService(repo ports.TeamRepository, users ports.UserRepository, log zerolog.Logger) ports.TeamService {
	return &teamService{repo: repo, users: users, log: log}
}

// Create registers a new team. The manager must be an existing gestor or admin.
func (s *teamService) Create(ctx context.Context, input ports.TeamInput) (*domain.Team, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := &domain.Team{
		Name:      input.Name,
		ManagerID: input.ManagerID,
		AgentIDs:  input.AgentIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.log.Info().Str("name", team.Name).Int64("manager_id", team.ManagerID).Msg("team created")
	return team, nil
}

func (s *teamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *teamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *teamService) Update(ctx context.Context, id string, input ports.TeamInput) (*domain.Team, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Name = input.Name
	team.ManagerID = input.ManagerID
	team.AgentIDs = input.AgentIDs
	team.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// validate checks the team payload and that the manager account exists with
// the gestor or admin role.
func (s *teamService) validate(ctx context.Context, input ports.TeamInput) error {
	if input.Name == "" || input.ManagerID == 0 {
		return domain.ErrInvalidInput
	}
	manager, err := s.users.FindByID(ctx, input.ManagerID)
	if err != nil {
		return fmt.Errorf("%w: manager account not found", domain.ErrInvalidInput)
	}
	if manager.Role != domain.RoleGestor && manager.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: manager must hold the gestor or admin role", domain.ErrInvalidInput)
	}
	return nil
}
