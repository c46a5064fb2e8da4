package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/api/metrics"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes synced log entries to a fixed set of workers using
// consistent hashing on the equipment ID, guaranteeing per-machine ordering
// even when a device replays a long offline journal.
type Dispatcher struct {
	workers []chan ports.MaintenanceLogInput
	service ports.LogService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LogService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.MaintenanceLogInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MaintenanceLogInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a log entry to the worker responsible for its equipment ID.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.MaintenanceLogInput) {
	i := d.shardIndex(in.EquipmentID)
	d.workers[i] <- in
	metrics.LogsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple entries preserving per-machine ordering.
func (d *Dispatcher) EnqueueBatch(ins []ports.MaintenanceLogInput) {
	for _, in := range ins {
		d.Enqueue(in)
	}
}

// shardIndex maps an equipment ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(equipmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(equipmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MaintenanceLogInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.LogsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, in); err != nil {
				metrics.LogsProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("equipment_id", in.EquipmentID).
					Int("worker_id", id).
					Msg("log processing failed")
				continue
			}
			metrics.LogsProcessedTotal.WithLabelValues("ok").Inc()
		}
	}
}
