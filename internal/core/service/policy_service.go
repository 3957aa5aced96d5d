package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type policyService struct {
	repo ports.PolicyRepository
	log  zerolog.Logger
}

// NewPolicyService returns a PolicyService implementation.
func NewPolicyService(repo ports.PolicyRepository, log zerolog.Logger) ports.PolicyService {
	return &policyService{repo: repo, log: log}
}

// Create registers a new policy in draft state. Agente callers become the
// managing agent of the policy they create.
func (s *policyService) Create(ctx context.Context, actor domain.Principal, input ports.CreatePolicyInput) (*domain.Policy, error) {
	if !domain.ValidPolicyKind(input.Kind) {
		return nil, fmt.Errorf("%w: unknown policy kind %q", domain.ErrInvalidInput, input.Kind)
	}
	if input.ClientID == 0 || input.PremiumEUR <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, fmt.Errorf("%w: end date must follow start date", domain.ErrInvalidInput)
	}

	agentID := actor.SubjectID
	now := time.Now().UTC()
	policy := &domain.Policy{
		Number:     generatePolicyNumber(),
		ClientID:   input.ClientID,
		AgentID:    agentID,
		Kind:       input.Kind,
		Status:     domain.PolicyDraft,
		PremiumEUR: input.PremiumEUR,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Coverages:  make([]domain.Coverage, 0, len(input.Coverages)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, cov := range input.Coverages {
		policy.Coverages = append(policy.Coverages, newCoverage(cov))
	}

	if err := s.repo.Create(ctx, policy); err != nil {
		s.log.Error().Err(err).Int64("client_id", input.ClientID).Msg("failed to create policy")
		return nil, err
	}

	s.log.Info().Str("number", policy.Number).Int64("client_id", policy.ClientID).Str("kind", string(policy.Kind)).Msg("policy created")
	return policy, nil
}

// Get returns a single policy, enforcing ownership for cliente callers.
func (s *policyService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.Policy, error) {
	policy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCliente && policy.ClientID != actor.SubjectID {
		// Do not reveal that the policy exists.
		return nil, domain.ErrPolicyNotFound
	}
	return policy, nil
}

// List returns policies visible to the caller. Cliente callers are always
// scoped to their own policies regardless of the requested filter.
func (s *policyService) List(ctx context.Context, actor domain.Principal, filter ports.PolicyFilter) ([]domain.Policy, error) {
	if actor.Role == domain.RoleCliente {
		filter.ClientID = actor.SubjectID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus advances the policy lifecycle following the transition table.
func (s *policyService) UpdateStatus(ctx context.Context, actor domain.Principal, id string, next domain.PolicyStatus) (*domain.Policy, error) {
	policy, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, policy.Status, next)
	}

	policy.Status = next
	policy.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, policy); err != nil {
		return nil, err
	}

	s.log.Info().Str("number", policy.Number).Str("status", string(next)).Msg("policy status updated")
	return policy, nil
}

func (s *policyService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddCoverage attaches a new covered risk to an existing policy.
func (s *policyService) AddCoverage(ctx context.Context, actor domain.Principal, policyID string, input ports.CoverageInput) (*domain.Policy, error) {
	if input.Name == "" || input.CapitalEUR <= 0 {
		return nil, domain.ErrInvalidInput
	}

	policy, err := s.Get(ctx, actor, policyID)
	if err != nil {
		return nil, err
	}

	policy.Coverages = append(policy.Coverages, newCoverage(input))
	policy.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// RemoveCoverage detaches a covered risk from a policy.
func (s *policyService) RemoveCoverage(ctx context.Context, actor domain.Principal, policyID, coverageID string) (*domain.Policy, error) {
	policy, err := s.Get(ctx, actor, policyID)
	if err != nil {
		return nil, err
	}

	kept := policy.Coverages[:0]
	found := false
	for _, cov := range policy.Coverages {
		if cov.ID == coverageID {
			found = true
			continue
		}
		kept = append(kept, cov)
	}
	if !found {
		return nil, domain.ErrCoverageNotFound
	}

	policy.Coverages = kept
	policy.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func newCoverage(input ports.CoverageInput) domain.Coverage {
	return domain.Coverage{
		ID:          primitive.NewObjectID().Hex(),
		Name:        input.Name,
		Description: input.Description,
		CapitalEUR:  input.CapitalEUR,
	}
}

// generatePolicyNumber returns a unique policy number in the format ML-XXXXXXXX.
func generatePolicyNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("ML-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ML-%08X", b)
}
