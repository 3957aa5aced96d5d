package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type memoryRecorder struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (r *memoryRecorder) Record(_ context.Context, ev ports.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *memoryRecorder) Recent(_ context.Context, _ int64) ([]ports.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.AuditEvent(nil), r.events...), nil
}

func (r *memoryRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := &memoryRecorder{}
	d := NewDispatcher(4, recorder, zerolog.Nop())
	d.Start(ctx)

	for i := int64(1); i <= 20; i++ {
		d.Enqueue(ports.AuditEvent{SubjectID: i, Action: "login", Outcome: ports.AuditOutcomeOK})
	}

	waitFor(t, func() bool { return recorder.count() == 20 })
}

func TestDispatcher_ShardingIsStablePerSubject(t *testing.T) {
	d := NewDispatcher(4, &memoryRecorder{}, zerolog.Nop())

	ev := ports.AuditEvent{SubjectID: 42}
	first := d.shardIndex(ev)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(ev); got != first {
			t.Fatalf("shard index changed: %d then %d", first, got)
		}
	}

	// Anonymous events shard by username instead.
	anon := ports.AuditEvent{Username: "ghost"}
	first = d.shardIndex(anon)
	if got := d.shardIndex(anon); got != first {
		t.Fatalf("anonymous shard index changed: %d then %d", first, got)
	}
}

func TestDispatcher_EnqueueNeverBlocksWhenStopped(t *testing.T) {
	// Workers never started: channels fill up and further events are dropped
	// rather than blocking the caller.
	d := NewDispatcher(1, &memoryRecorder{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+50; i++ {
			d.Enqueue(ports.AuditEvent{SubjectID: 1, Action: "authorize"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
}
