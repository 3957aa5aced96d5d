package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

const (
	auditKey        = "audit:auth"
	auditMaxEntries = 10000
)

// AuditStore persists authentication and authorization audit events in a
// capped Redis list, newest first.
type AuditStore struct {
	client *redis.Client
}

// NewAuditStore creates an AuditStore wrapping the given Redis client.
func NewAuditStore(client *redis.Client) *AuditStore {
	return &AuditStore{client: client}
}

// Record appends one event and trims the list to auditMaxEntries.
func (a *AuditStore) Record(ctx context.Context, ev ports.AuditEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	pipe := a.client.TxPipeline()
	pipe.LPush(ctx, auditKey, payload)
	pipe.LTrim(ctx, auditKey, 0, auditMaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (a *AuditStore) Recent(ctx context.Context, limit int64) ([]ports.AuditEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	raw, err := a.client.LRange(ctx, auditKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read audit trail: %w", err)
	}

	events := make([]ports.AuditEvent, 0, len(raw))
	for _, item := range raw {
		var ev ports.AuditEvent
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}
