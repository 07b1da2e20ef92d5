package components

import (
	"seat-reservation/internal/usecase/jobs"

	"go.uber.org/fx"
)

var JobModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewHoldReclaimer,
		jobs.NewPaymentRecoverer,
		jobs.NewOutboxRelay,
	),
)
