package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"seat-reservation/cmd/bootstrap"
	"seat-reservation/internal/domain/event"
	"seat-reservation/internal/infra/db"
	sqlc "seat-reservation/internal/infra/sqlc/generated"
	"seat-reservation/internal/infra/uow"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase/shared"
)

const resetSQL = `TRUNCATE notification_jobs, payments, seat_holds, bookings, seats, events RESTART IDENTITY CASCADE`

// Development only: wipes every table and creates one event starting in 24h.
func main() {
	seats := flag.Int("seats", 100, "number of seats to create")
	title := flag.String("title", "Test Event", "event title")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg)

	if err := run(context.Background(), cfg, logger, *title, *seats); err != nil {
		logger.Error("シードデータの投入に失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, title string, seatCount int) error {
	numbers, err := event.SeatNumbers(seatCount)
	if err != nil {
		return err
	}
	ev, err := event.New(title, time.Now().Add(24*time.Hour))
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	var created int64
	err = uow.NewPostgresUoW(pool, sqlc.New(), logger).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.DB().Exec(ctx, resetSQL); err != nil {
			return errs.Wrap(err, "failed to reset tables")
		}
		n, err := tx.Events().Create(ctx, tx.DB(), ev, numbers)
		if err != nil {
			return err
		}
		created = n
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("シードデータを投入しました", "event_id", ev.ID(), "title", ev.Title(), "seats", created)
	return nil
}
