package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// UserService defines the admin-only account management operations.
// Self-registration and login live on AuthService.
type UserService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
