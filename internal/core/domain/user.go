package domain

import "time"

// User models a stored account: credentials plus the single role assigned at
// creation time.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the verified identity extracted from a bearer token. It lives
// for the duration of one request and is never persisted; handlers and audit
// logging read SubjectID as the authenticated caller's identity.
type Principal struct {
	SubjectID int64 `json:"subject_id"`
	Role      Role  `json:"role"`
}
