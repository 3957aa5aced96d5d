package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// PolicyFilter narrows a policy listing. Zero values mean "no filter";
// ClientID restricts results to one client and is how cliente callers are
// scoped to their own policies.
type PolicyFilter struct {
	ClientID int64
	AgentID  int64
	Kind     domain.PolicyKind
	Status   domain.PolicyStatus
}

// PolicyRepository defines the interface for policy persistence.
type PolicyRepository interface {
	Create(ctx context.Context, policy *domain.Policy) error
	FindByID(ctx context.Context, id string) (*domain.Policy, error)
	List(ctx context.Context, filter PolicyFilter) ([]domain.Policy, error)
	Update(ctx context.Context, policy *domain.Policy) error
	Delete(ctx context.Context, id string) error
}
