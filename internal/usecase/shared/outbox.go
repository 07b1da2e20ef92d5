package shared

import (
	"context"
	"encoding/json"
	"time"

	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Routing keys of the seat lifecycle events.
const (
	TopicSeatHeld         = "seat.held"
	TopicSeatBooked       = "seat.booked"
	TopicPaymentSucceeded = "payment.succeeded"
	TopicPaymentFailed    = "payment.failed"
	TopicHoldExpired      = "hold.expired"
	TopicPaymentAbandoned = "payment.abandoned"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

type OutboxJob struct {
	ID        uuid.UUID
	Topic     string
	Payload   []byte
	Attempts  int32
	CreatedAt time.Time
}

type LifecycleEvent struct {
	SeatID     uuid.UUID  `json:"seat_id"`
	EventID    uuid.UUID  `json:"event_id"`
	HoldID     *uuid.UUID `json:"hold_id,omitempty"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	PaymentID  *uuid.UUID `json:"payment_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EnqueueLifecycleEvent writes ev to the outbox inside tx so that it is
// published only if the transition commits.
func EnqueueLifecycleEvent(ctx context.Context, tx Tx, topic string, ev LifecycleEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal lifecycle event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), topic, payload, ev.OccurredAt)
}
