//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts an event with seats numbered 1..seatCount and returns the event id
// and the seat ids indexed by seat number - 1
func CreateEventWithSeats(t *testing.T, db DBLike, title string, seatCount int) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	eventID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO events (id, title, event_date) VALUES ($1, $2, $3)",
		eventID, title, time.Now().Add(30*24*time.Hour).UTC())
	require.NoError(t, err)

	seatIDs := make([]uuid.UUID, seatCount)
	for i := range seatIDs {
		seatIDs[i] = uuid.New()
		_, err := db.Exec(ctx, "INSERT INTO seats (id, event_id, seat_number, status) VALUES ($1, $2, $3, 'available')",
			seatIDs[i], eventID, i+1)
		require.NoError(t, err)
	}
	return eventID, seatIDs
}

func SeatStatus(t *testing.T, db DBLike, seatID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM seats WHERE id = $1", seatID).Scan(&status)
	require.NoError(t, err)
	return status
}

func PaymentStatus(t *testing.T, db DBLike, paymentID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM payments WHERE id = $1", paymentID).Scan(&status)
	require.NoError(t, err)
	return status
}

// counts rows of table matching the optional where clause
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// moves a hold's expiry into the past without touching its seat
func ExpireHold(t *testing.T, db DBLike, holdID uuid.UUID, at time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE seat_holds SET expires_at = $2 WHERE id = $1", holdID, at)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// inserts a pending payment for bookingID, as left behind by an attempt that
// died between the insert and the gateway answer
func InsertPendingPayment(t *testing.T, db DBLike, bookingID uuid.UUID, key string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO payments (id, booking_id, idempotency_key, status, created_at, updated_at) VALUES ($1, $2, $3, 'pending', $4, $4)",
		id, bookingID, key, createdAt)
	require.NoError(t, err)
	return id
}

// seat <-> hold <-> booking consistency at a single instant
type InvariantViolation struct {
	SeatID   uuid.UUID
	Status   string
	Holds    int
	Bookings int
}

// returns every seat whose status disagrees with its hold and booking rows.
// Booking rows outlive abandoned payments, so available seats may have some.
func CheckSeatInvariant(t *testing.T, db DBLike) []InvariantViolation {
	t.Helper()

	rows, err := db.Query(context.Background(), `
		SELECT s.id, s.status,
		       (SELECT count(*) FROM seat_holds h WHERE h.seat_id = s.id) AS holds,
		       (SELECT count(*) FROM bookings b WHERE b.seat_id = s.id) AS bookings
		FROM seats s
		ORDER BY s.event_id, s.seat_number`)
	require.NoError(t, err)
	defer rows.Close()

	var violations []InvariantViolation
	for rows.Next() {
		var v InvariantViolation
		require.NoError(t, rows.Scan(&v.SeatID, &v.Status, &v.Holds, &v.Bookings))
		ok := false
		switch v.Status {
		case "held":
			ok = v.Holds == 1
		case "booked":
			ok = v.Bookings >= 1 && v.Holds == 0
		case "available":
			ok = v.Holds == 0
		}
		if !ok {
			violations = append(violations, v)
		}
	}
	require.NoError(t, rows.Err())
	return violations
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
