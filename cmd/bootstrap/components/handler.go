package components

import (
	"carestay/internal/handler"
	"carestay/internal/handler/api"
	"carestay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewSupplierHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			listing *api.ListingHandler,
			supplier *api.SupplierHandler,
			booking *api.BookingHandler,
			admin *api.AdminHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Listing:  listing,
				Supplier: supplier,
				Booking:  booking,
				Admin:    admin,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
