//go:build unit

package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/shared"
	sharedmock "seat-reservation/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type jobMocks struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	seats         *sharedmock.MockSeatRepository
	holds         *sharedmock.MockHoldRepository
	payments      *sharedmock.MockPaymentRepository
	notifications *sharedmock.MockNotificationRepository
	seatMap       *sharedmock.MockSeatMapInvalidator
	clock         *clock.MockClock
	logger        *slog.Logger
	cfg           config.Config
}

func newJobMocks(t *testing.T) *jobMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &jobMocks{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		seats:         sharedmock.NewMockSeatRepository(ctrl),
		holds:         sharedmock.NewMockHoldRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		seatMap:       sharedmock.NewMockSeatMapInvalidator(ctrl),
		clock:         clock.NewMockClock(fixedNow),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:           config.NewTestConfig(),
	}

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Seats().Return(m.seats).AnyTimes()
	m.tx.EXPECT().Holds().Return(m.holds).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}
