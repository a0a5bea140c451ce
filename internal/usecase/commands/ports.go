package commands

import (
	"context"
	"encoding/json"
	"time"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/infra/broadcast"
	"campus-reserve/internal/infra/cart"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox wire kinds. The worker dispatches on these; the lifecycle event
// travels in the job topic.
const (
	kindEmail     = "email"
	kindBroadcast = "broadcast"
)

// Notification topics staged on the outbox whenever a reservation changes
// state. Delivery templates key off the topic.
const (
	NotifyReservationCreated   = "reservation_created"
	NotifyReservationApproved  = "reservation_approved"
	NotifyReservationRejected  = "reservation_rejected"
	NotifyItemsIssued          = "items_issued"
	NotifyReturnRequested      = "return_requested"
	NotifyItemsReturned        = "items_returned"
	NotifyReservationCompleted = "reservation_completed"
	NotifyReservationCancelled = "reservation_cancelled"
)

// EventPublisher pushes committed state changes to live subscribers.
// Implementations must be best-effort; the transaction is already done.
type EventPublisher interface {
	Publish(ctx context.Context, event broadcast.Event)
}

// StatsInvalidator drops cached dashboard statistics after a write.
type StatsInvalidator interface {
	Forget(ctx context.Context)
}

// CartStore holds a user's draft reservation lines between sessions.
type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) ([]cart.Line, error)
	Save(ctx context.Context, userID uuid.UUID, lines []cart.Line) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// stageNotification writes outbox jobs inside the same transaction that
// changed the reservation, so delivery and state change commit atomically.
// Every lifecycle event gets both wire kinds: a broadcast job for live
// subscribers and an email job for the owner.
func stageNotification(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"code":           res.Code(),
		"user_id":        res.UserID(),
		"status":         res.Status().String(),
	})
	if err != nil {
		return err
	}
	for _, kind := range []string{kindBroadcast, kindEmail} {
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, runAt); err != nil {
			return err
		}
	}
	return nil
}

// afterCommit fans out the side effects that must not run inside the
// transaction: pub/sub broadcast and statistics cache invalidation.
func afterCommit(ctx context.Context, publisher EventPublisher, stats StatsInvalidator, res *reservation.Reservation, now time.Time) {
	publisher.Publish(ctx, broadcast.Event{
		ReservationID: res.ID(),
		Code:          res.Code(),
		UserID:        res.UserID(),
		Status:        res.Status().String(),
		OccurredAt:    now,
	})
	stats.Forget(ctx)
}
