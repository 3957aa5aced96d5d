package ports

import (
	"context"
	"time"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// Audit outcome values.
const (
	AuditOutcomeOK     = "ok"
	AuditOutcomeDenied = "denied"
)

// AuditEvent records an authentication or authorization decision for the
// audit trail. SubjectID is zero when the caller was never identified
// (missing or unverifiable token).
type AuditEvent struct {
	SubjectID int64       `json:"subject_id,omitempty"`
	Username  string      `json:"username,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	Action    string      `json:"action"`
	Outcome   string      `json:"outcome"`
	Reason    string      `json:"reason,omitempty"`
	Path      string      `json:"path,omitempty"`
	At        time.Time   `json:"at"`
}

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, ev AuditEvent) error
	Recent(ctx context.Context, limit int64) ([]AuditEvent, error)
}

// AuditSink accepts events for asynchronous recording. Enqueue must be safe
// to call from concurrent request handlers and must never block the request
// path on storage.
type AuditSink interface {
	Enqueue(ev AuditEvent)
}
