package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api/metrics"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans audit events out to a fixed set of workers using
// consistent hashing on the subject, guaranteeing per-subject event
// ordering in the trail. It keeps the request path free of storage latency.
type Dispatcher struct {
	workers  []chan ports.AuditEvent
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.AuditEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its subject. Never
// blocks: when the worker channel is full the event is dropped and counted.
func (d *Dispatcher) Enqueue(ev ports.AuditEvent) {
	idx := d.shardIndex(ev)
	select {
	case d.workers[idx] <- ev:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.Inc()
		d.log.Warn().Int("worker_id", idx).Str("action", ev.Action).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an event deterministically to a worker index. Identified
// subjects shard by id; anonymous failures shard by username.
func (d *Dispatcher) shardIndex(ev ports.AuditEvent) int {
	h := fnv.New32a()
	if ev.SubjectID != 0 {
		_, _ = h.Write([]byte(strconv.FormatInt(ev.SubjectID, 10)))
	} else {
		_, _ = h.Write([]byte(ev.Username))
	}
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.recorder.Record(ctx, ev); err != nil {
				d.log.Error().Err(err).
					Str("action", ev.Action).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
