//go:build unit

package commands_test

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

type txMocks struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	seats         *sharedmock.MockSeatRepository
	holds         *sharedmock.MockHoldRepository
	bookings      *sharedmock.MockBookingRepository
	payments      *sharedmock.MockPaymentRepository
	notifications *sharedmock.MockNotificationRepository
	seatMap       *sharedmock.MockSeatMapInvalidator
	clock         *clock.MockClock
	logger        *slog.Logger
	cfg           config.ReservationConfig
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		seats:         sharedmock.NewMockSeatRepository(ctrl),
		holds:         sharedmock.NewMockHoldRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		seatMap:       sharedmock.NewMockSeatMapInvalidator(ctrl),
		clock:         clock.NewMockClock(fixedNow),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:           config.NewTestConfig().Reservation,
	}

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Seats().Return(m.seats).AnyTimes()
	m.tx.EXPECT().Holds().Return(m.holds).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	return m
}

// expectWithin runs the transaction body against the mocked Tx once.
func (m *txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func (m *txMocks) expectOutbox(topic string) {
	m.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), topic, gomock.Any(), gomock.Any()).
		Return(nil)
}
