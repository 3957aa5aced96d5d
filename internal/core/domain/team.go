package domain

import "time"

// Team groups agents under a managing gestor.
type Team struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	ManagerID int64     `json:"manager_id" bson:"manager_id"`
	AgentIDs  []int64   `json:"agent_ids" bson:"agent_ids"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
