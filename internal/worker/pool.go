package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueEmail        = "jobs:email"
	QueueRecibo       = "jobs:recibo"
	QueueNotificacion = "jobs:notificacion"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueEmail pushes a templated email job.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

// EnqueueRecibo pushes a delivery receipt job (PDF + email).
func (d *Dispatcher) EnqueueRecibo(ctx context.Context, payload ReciboJobPayload) error {
	return d.enqueue(ctx, QueueRecibo, "recibo", payload)
}

// EnqueueNotificacion pushes an in-app notification job.
func (d *Dispatcher) EnqueueNotificacion(ctx context.Context, payload NotificacionJobPayload) error {
	return d.enqueue(ctx, QueueNotificacion, "notificacion", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers bundles the per-queue processors, wired at the composition
// root so each worker has its infrastructure dependencies.
type WorkerHandlers struct {
	Email        *EmailWorker
	Recibo       *ReciboWorker
	Notificacion *NotificacionWorker
}

// StartWorkerPool launches numWorkers goroutines consuming all queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueEmail, QueueRecibo, QueueNotificacion}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch queue {
	case QueueEmail:
		err = handlers.Email.Process(ctx, job.Payload)
	case QueueRecibo:
		err = handlers.Recibo.Process(ctx, job.Payload)
	case QueueNotificacion:
		err = handlers.Notificacion.Process(ctx, job.Payload)
	default:
		log.Warn().Str("queue", queue).Msg("job from unknown queue dropped")
		return
	}

	// No automatic retry: a failed job goes straight to the DLQ for manual
	// inspection.
	if err != nil {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error())
	}
}
