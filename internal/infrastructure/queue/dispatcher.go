package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/linkup/linkup-api/internal/api/metrics"
	"github.com/linkup/linkup-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes notification events to a fixed set of workers using
// consistent hashing on the recipient id, guaranteeing per-recipient
// delivery ordering.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify sends an event to the worker responsible for its recipient. The call
// never blocks: when the worker's buffer is full the event is logged and
// dropped, since notifications are best-effort.
func (d *Dispatcher) Notify(input ports.NotificationInput) {
	idx := d.shardIndex(input.Recipient)
	select {
	case d.workers[idx] <- input:
		metrics.NotificationsQueuedTotal.WithLabelValues(string(input.Kind)).Inc()
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsDroppedTotal.WithLabelValues(string(input.Kind)).Inc()
		d.log.Warn().
			Str("recipient", input.Recipient).
			Str("kind", string(input.Kind)).
			Int("worker_id", idx).
			Msg("notification dropped, worker buffer full")
	}
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("recipient", input.Recipient).
					Str("kind", string(input.Kind)).
					Int("worker_id", id).
					Msg("notification processing failed")
			}
			metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
