package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// UserRepository defines the interface for user-account persistence. The
// auth core only ever reads credentials through it; account mutation is an
// explicit admin flow.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
