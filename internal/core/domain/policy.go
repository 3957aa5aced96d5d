package domain

import "time"

// PolicyStatus represents the lifecycle state of an insurance policy.
type PolicyStatus string

const (
	PolicyDraft     PolicyStatus = "draft"
	PolicyActive    PolicyStatus = "active"
	PolicyCancelled PolicyStatus = "cancelled"
	PolicyExpired   PolicyStatus = "expired"
)

// validPolicyTransitions defines the allowed state machine transitions.
var validPolicyTransitions = map[PolicyStatus][]PolicyStatus{
	PolicyDraft:  {PolicyActive, PolicyCancelled},
	PolicyActive: {PolicyCancelled, PolicyExpired},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s PolicyStatus) CanTransitionTo(next PolicyStatus) bool {
	for _, allowed := range validPolicyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PolicyKind is the insurance product line a policy belongs to.
type PolicyKind string

const (
	PolicyVida    PolicyKind = "vida"
	PolicySaude   PolicyKind = "saude"
	PolicyVeiculo PolicyKind = "veiculo"
)

// ValidPolicyKind reports whether k is a known product line.
func ValidPolicyKind(k PolicyKind) bool {
	return k == PolicyVida || k == PolicySaude || k == PolicyVeiculo
}

// Coverage is a single covered risk inside a policy, stored as an embedded
// item rather than a standalone record.
type Coverage struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	CapitalEUR  float64 `json:"capital_eur" bson:"capital_eur"`
}

// Policy is the core aggregate root: one insurance contract between a client
// and the insurer, managed by an agent.
type Policy struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	Number     string       `json:"number" bson:"number"`
	ClientID   int64        `json:"client_id" bson:"client_id"`
	AgentID    int64        `json:"agent_id" bson:"agent_id"`
	Kind       PolicyKind   `json:"kind" bson:"kind"`
	Status     PolicyStatus `json:"status" bson:"status"`
	PremiumEUR float64      `json:"premium_eur" bson:"premium_eur"`
	StartDate  time.Time    `json:"start_date" bson:"start_date"`
	EndDate    time.Time    `json:"end_date" bson:"end_date"`
	Coverages  []Coverage   `json:"coverages" bson:"coverages"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" bson:"updated_at"`
}
