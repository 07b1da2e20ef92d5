package shared

import (
	"context"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/domain/event"
	"seat-reservation/internal/domain/hold"
	"seat-reservation/internal/domain/payment"
	"seat-reservation/internal/domain/seat"
	sqlc "seat-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Events() EventRepository
	Seats() SeatRepository
	Holds() HoldRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
	// Savepoint runs fn so that its failure rolls back only its own writes.
	Savepoint(ctx context.Context, fn func(ctx context.Context) error) error
	DB() sqlc.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID        uuid.UUID
	SeatID    uuid.UUID
	EventID   uuid.UUID
	UserEmail string
}

type EventRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, ev *event.Event, seatNumbers []int32) (int64, error)
}

type SeatRepository interface {
	// LockByID takes the seat's row lock for the rest of the transaction.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*seat.Seat, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, s *seat.Seat, now time.Time) error
}

type HoldRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error
	// LockLive locks the hold only while expires_at > now.
	LockLive(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (*hold.Hold, error)
	// LockNextExpired skips holds locked by other transactions and those in exclude.
	LockNextExpired(ctx context.Context, tx sqlc.DBTX, now time.Time, exclude []uuid.UUID) (*hold.Hold, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type PaymentRepository interface {
	FindByIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key payment.IdempotencyKey) (*payment.Payment, error)
	// InsertPending reports false when another transaction already owns the key.
	InsertPending(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (bool, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	LockStalePending(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) ([]*StalePayment, error)
}

type StalePayment struct {
	Payment *payment.Payment
	SeatID  uuid.UUID
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*OutboxJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}
