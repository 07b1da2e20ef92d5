package jobs

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox_relay.go -destination=../../../tests/mock/jobs/outbox_relay.go -package=jobsmock

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, messageID uuid.UUID, body []byte) error
}

const relayRetryBase = 10 * time.Second

type RelayResult struct {
	Sent   int
	Failed int
}

// OutboxRelay publishes committed lifecycle events from notification_jobs.
// Delivery is at least once; consumers deduplicate on the message id.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.BrokerConfig, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger.With("job", "outbox_relay"),
	}
}

func (r *OutboxRelay) Run(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RelayResult{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := r.publisher.Publish(ctx, job.Topic, job.ID, job.Payload); perr != nil {
				attempts := job.Attempts + 1
				status := shared.OutboxStatusPending
				if attempts >= r.maxAttempts {
					status = shared.OutboxStatusFailed
				}
				msg := perr.Error()
				if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, &msg, now.Add(retryDelay(attempts))); err != nil {
					return err
				}
				r.logger.WarnContext(ctx, "failed to publish lifecycle event",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", attempts,
					"error", msg,
				)
				result.Failed++
				continue
			}

			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.OutboxStatusSent, nil, now); err != nil {
				return err
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, err
	}

	if result.Sent > 0 || result.Failed > 0 {
		r.logger.DebugContext(ctx, "outbox relay finished", "sent", result.Sent, "failed", result.Failed)
	}
	return result, nil
}

// retryDelay doubles per attempt: 10s, 20s, 40s, ...
func retryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 10 {
		attempts = 10
	}
	return relayRetryBase << (attempts - 1)
}
