package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	staffChannel      = "reservations.events"
	userChannelPrefix = "reservations.user."
)

// Event is the wire shape published to redis pub/sub when a reservation
// changes state. The staff dashboard subscribes to the shared channel, a
// student's browser to their own.
type Event struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	UserID        uuid.UUID `json:"user_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish fans the event out to the staff channel and the owner's channel.
// Broadcast is best-effort; failures are logged, never returned, because the
// state change has already committed.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	raw, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal broadcast event", "error", err.Error())
		return
	}

	if err := p.rdb.Publish(ctx, staffChannel, raw).Err(); err != nil {
		slog.Warn("failed to publish staff broadcast", "error", err.Error())
	}
	if err := p.rdb.Publish(ctx, userChannelPrefix+event.UserID.String(), raw).Err(); err != nil {
		slog.Warn("failed to publish user broadcast", "error", err.Error())
	}
}
