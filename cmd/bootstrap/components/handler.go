package components

import (
	"campus-reserve/internal/handler"
	"campus-reserve/internal/handler/api"
	"campus-reserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEquipmentHandler,
		api.NewCartHandler,
		api.NewReservationHandler,
		api.NewStaffReservationHandler,
		api.NewScannerHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	equipment *api.EquipmentHandler,
	cartHandler *api.CartHandler,
	res *api.ReservationHandler,
	staff *api.StaffReservationHandler,
	scanner *api.ScannerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Equipment: equipment,
		Cart:      cartHandler,
		Res:       res,
		Staff:     staff,
		Scanner:   scanner,
	}
}
