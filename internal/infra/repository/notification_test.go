//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/repository"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/pkg/pgconv"
	"seat-reservation/internal/usecase/shared"
	repositorymock "seat-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	payload := []byte(`{"seat_id":"s"}`)
	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
		Topic:   shared.TopicSeatHeld,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.OutboxStatusPending,
	}).Return(nil)

	require.NoError(t, repo.CreateJob(ctx, mockDB, shared.TopicSeatHeld, payload, runAt))
}

func TestNotificationRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		row := sqlc.NotificationJobs{
			ID:        uuid.New(),
			Topic:     shared.TopicHoldExpired,
			Payload:   []byte(`{}`),
			Attempts:  2,
			Status:    shared.OutboxStatusPending,
			CreatedAt: pgconv.TimeToPgtype(now.Add(-time.Minute)),
		}
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, sqlc.ClaimPendingNotificationJobsParams{
			Now:       pgconv.TimeToPgtype(now),
			BatchSize: 25,
		}).Return([]sqlc.NotificationJobs{row}, nil)

		jobs, err := repo.ClaimPending(ctx, mockDB, now, 25)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, row.ID, jobs[0].ID)
		assert.Equal(t, shared.TopicHoldExpired, jobs[0].Topic)
		assert.Equal(t, int32(2), jobs[0].Attempts)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("database connection error"))

		_, err := repo.ClaimPending(ctx, mockDB, now, 25)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 3, 1, 12, 0, 10, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	id := uuid.New()
	msg := "channel closed"
	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error {
			assert.Equal(t, id, arg.ID)
			assert.Equal(t, shared.OutboxStatusPending, arg.Status)
			assert.True(t, arg.LastError.Valid)
			assert.Equal(t, msg, arg.LastError.String)
			return nil
		})

	require.NoError(t, repo.UpdateJobStatus(ctx, mockDB, id, shared.OutboxStatusPending, &msg, runAt))
}
