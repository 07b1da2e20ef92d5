//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/usecase/jobs"
	"seat-reservation/internal/usecase/shared"
	jobsmock "seat-reservation/tests/mock/jobs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func outboxJob(topic string, attempts int32) *shared.OutboxJob {
	return &shared.OutboxJob{
		ID:        uuid.New(),
		Topic:     topic,
		Payload:   []byte(`{"seat_id":"x"}`),
		Attempts:  attempts,
		CreatedAt: fixedNow.Add(-time.Minute),
	}
}

func TestOutboxRelay_Run(t *testing.T) {
	errBroker := errors.New("channel closed")

	testCases := []struct {
		name          string
		attempts      int32
		publishErr    error
		expectStatus  string
		expectRunAt   time.Time
		expectMessage bool
		expectResult  jobs.RelayResult
	}{
		{
			name:         "published job is marked sent",
			expectStatus: shared.OutboxStatusSent,
			expectRunAt:  fixedNow,
			expectResult: jobs.RelayResult{Sent: 1},
		},
		{
			name:          "first failure is retried after the base delay",
			publishErr:    errBroker,
			expectStatus:  shared.OutboxStatusPending,
			expectRunAt:   fixedNow.Add(10 * time.Second),
			expectMessage: true,
			expectResult:  jobs.RelayResult{Failed: 1},
		},
		{
			name:          "delay doubles per attempt",
			attempts:      2,
			publishErr:    errBroker,
			expectStatus:  shared.OutboxStatusPending,
			expectRunAt:   fixedNow.Add(40 * time.Second),
			expectMessage: true,
			expectResult:  jobs.RelayResult{Failed: 1},
		},
		{
			name:          "last attempt marks the job failed",
			attempts:      4,
			publishErr:    errBroker,
			expectStatus:  shared.OutboxStatusFailed,
			expectRunAt:   fixedNow.Add(160 * time.Second),
			expectMessage: true,
			expectResult:  jobs.RelayResult{Failed: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newJobMocks(t)
			publisher := jobsmock.NewMockEventPublisher(m.ctrl)
			relay := jobs.NewOutboxRelay(m.uow, publisher, m.clock, m.cfg.Broker, m.logger)

			job := outboxJob(shared.TopicSeatHeld, tc.attempts)
			m.notifications.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), fixedNow, int32(50)).
				Return([]*shared.OutboxJob{job}, nil)
			publisher.EXPECT().Publish(gomock.Any(), shared.TopicSeatHeld, job.ID, job.Payload).Return(tc.publishErr)
			m.notifications.EXPECT().
				UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, tc.expectStatus, gomock.Any(), tc.expectRunAt).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ string, lastError *string, _ time.Time) error {
					if tc.expectMessage {
						require.NotNil(t, lastError)
						assert.Equal(t, errBroker.Error(), *lastError)
					} else {
						assert.Nil(t, lastError)
					}
					return nil
				})

			result, err := relay.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expectResult, result)
		})
	}
}

func TestOutboxRelay_MixedBatch(t *testing.T) {
	m := newJobMocks(t)
	publisher := jobsmock.NewMockEventPublisher(m.ctrl)
	relay := jobs.NewOutboxRelay(m.uow, publisher, m.clock, m.cfg.Broker, m.logger)

	held := outboxJob(shared.TopicSeatHeld, 0)
	booked := outboxJob(shared.TopicSeatBooked, 0)

	m.notifications.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), fixedNow, gomock.Any()).
		Return([]*shared.OutboxJob{held, booked}, nil)
	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), shared.TopicSeatHeld, held.ID, gomock.Any()).Return(nil),
		publisher.EXPECT().Publish(gomock.Any(), shared.TopicSeatBooked, booked.ID, gomock.Any()).Return(errors.New("nack")),
	)
	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), held.ID, shared.OutboxStatusSent, gomock.Nil(), fixedNow).Return(nil)
	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), booked.ID, shared.OutboxStatusPending, gomock.Not(gomock.Nil()), gomock.Any()).Return(nil)

	result, err := relay.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs.RelayResult{Sent: 1, Failed: 1}, result)
}

func TestOutboxRelay_ClaimFailure(t *testing.T) {
	m := newJobMocks(t)
	publisher := jobsmock.NewMockEventPublisher(m.ctrl)
	relay := jobs.NewOutboxRelay(m.uow, publisher, m.clock, m.cfg.Broker, m.logger)

	m.notifications.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("relation notification_jobs does not exist"))

	result, err := relay.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, jobs.RelayResult{}, result)
}
