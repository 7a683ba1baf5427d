package components

import (
	"padel-booking/internal/handler"
	"padel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCourtHandler,
		api.NewScheduleHandler,
		api.NewUserHandler,
		api.NewPaymentHandler,
		func(
			reservation *api.ReservationHandler,
			court *api.CourtHandler,
			schedule *api.ScheduleHandler,
			user *api.UserHandler,
			payment *api.PaymentHandler,
		) handler.Handlers {
			return handler.Handlers{
				Reservation: reservation,
				Court:       court,
				Schedule:    schedule,
				User:        user,
				Payment:     payment,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
