package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// TeamInput carries the data for creating or updating a team.
type TeamInput struct {
	Name      string
	ManagerID int64
	AgentIDs  []int64
}

// TeamRepository persists teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
}

// TeamService defines use-case operations for teams.
type TeamService interface {
	Create(ctx context.Context, input TeamInput) (*domain.Team, error)
	Get(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Update(ctx context.Context, id string, input TeamInput) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}
