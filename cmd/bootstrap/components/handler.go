package components

import (
	"seat-reservation/internal/handler"
	"seat-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHoldHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewEventHandler,
		api.NewSeatHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Hold    *api.HoldHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Event   *api.EventHandler
	Seat    *api.SeatHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Hold:    p.Hold,
		Booking: p.Booking,
		Payment: p.Payment,
		Event:   p.Event,
		Seat:    p.Seat,
	}
}
