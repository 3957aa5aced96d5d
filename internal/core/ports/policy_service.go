package ports

import (
	"context"
	"time"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// CreatePolicyInput carries all data needed to create a new policy.
type CreatePolicyInput struct {
	ClientID   int64
	Kind       domain.PolicyKind
	PremiumEUR float64
	StartDate  time.Time
	EndDate    time.Time
	Coverages  []CoverageInput
}

// CoverageInput holds one covered risk to attach to a policy.
type CoverageInput struct {
	Name        string
	Description string
	CapitalEUR  float64
}

// PolicyService defines use-case operations for policies. Every operation
// takes the authenticated caller so ownership rules can be enforced:
// cliente callers only ever see or touch their own policies.
type PolicyService interface {
	Create(ctx context.Context, actor domain.Principal, input CreatePolicyInput) (*domain.Policy, error)
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.Policy, error)
	List(ctx context.Context, actor domain.Principal, filter PolicyFilter) ([]domain.Policy, error)
	UpdateStatus(ctx context.Context, actor domain.Principal, id string, next domain.PolicyStatus) (*domain.Policy, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
	AddCoverage(ctx context.Context, actor domain.Principal, policyID string, input CoverageInput) (*domain.Policy, error)
	RemoveCoverage(ctx context.Context, actor domain.Principal, policyID, coverageID string) (*domain.Policy, error)
}
