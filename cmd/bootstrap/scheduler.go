package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase/jobs"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

type scheduledJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// StartScheduler runs the background sweeps. Singleton mode keeps a slow run
// from overlapping the next tick.
func StartScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	reclaimer *jobs.HoldReclaimer,
	recoverer *jobs.PaymentRecoverer,
	relay *jobs.OutboxRelay,
	logger *slog.Logger,
) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())

	defs := []scheduledJob{
		{
			name:     "hold_reclaimer",
			interval: cfg.Reservation.HoldSweepInterval,
			run: func(ctx context.Context) error {
				_, err := reclaimer.Run(ctx)
				return err
			},
		},
		{
			name:     "payment_recoverer",
			interval: cfg.Reservation.PaymentSweepInterval,
			run: func(ctx context.Context) error {
				_, err := recoverer.Run(ctx)
				return err
			},
		},
		{
			name:     "outbox_relay",
			interval: cfg.Broker.RelayInterval,
			run: func(ctx context.Context) error {
				_, err := relay.Run(ctx)
				return err
			},
		},
	}

	for _, d := range defs {
		_, err := sched.NewJob(
			gocron.DurationJob(d.interval),
			gocron.NewTask(func() {
				if err := d.run(ctx); err != nil && ctx.Err() == nil {
					logger.Error("scheduled job failed", "job", d.name, "error", err.Error())
				}
			}),
			gocron.WithName(d.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			cancel()
			return err
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			logger.Info("scheduler started", "jobs", len(sched.Jobs()))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return sched.Shutdown()
		},
	})
	return nil
}
