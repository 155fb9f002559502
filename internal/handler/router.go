package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carestay/internal/handler/api"
	"carestay/internal/handler/middleware"
	"carestay/internal/infra/cache"
	"carestay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Listing  *api.ListingHandler
	Supplier *api.SupplierHandler
	Booking  *api.BookingHandler
	Admin    *api.AdminHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	cacheService *cache.Service,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, cacheService)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, cacheService *cache.Service) {
	engine.GET("/health", healthCheck(cacheService))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public catalog endpoints
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/nursing-homes", Handler: h.Listing.Search},
			{Method: http.MethodGet, Path: "/nursing-homes/:id", Handler: h.Listing.Get},
			{Method: http.MethodGet, Path: "/room-types/:id/rate-plans", Handler: h.Listing.ListRatePlans},
			{Method: http.MethodGet, Path: "/rate-plans/:id/calendar", Handler: h.Listing.GetCalendar},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{middleware.RequireCustomerOrAdmin()}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.ListPayments},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve, Mw: []gin.HandlerFunc{middleware.RequireSupplierOrAdmin()}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmPayment},
			})
		}

		supplierGroup := apiGroup.Group("/supplier")
		supplierGroup.Use(authMiddleware.RequireAuth(), middleware.RequireSupplier())
		{
			addRoutes(supplierGroup, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Supplier.MySupplier},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Supplier.Dashboard},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Supplier.ListBookings},
				{Method: http.MethodPost, Path: "/nursing-homes", Handler: h.Supplier.CreateNursingHome},
				{Method: http.MethodPatch, Path: "/nursing-homes/:id/status", Handler: h.Supplier.UpdateHomeStatus},
				{Method: http.MethodPost, Path: "/nursing-homes/:id/room-types", Handler: h.Supplier.CreateRoomType},
				{Method: http.MethodPost, Path: "/room-types/:id/rate-plans", Handler: h.Supplier.CreateRatePlan},
				{Method: http.MethodPut, Path: "/rate-plans/:id/calendar", Handler: h.Supplier.UpsertCalendar},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth(), middleware.RequireAdmin())
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodPatch, Path: "/suppliers/:id/qc", Handler: h.Admin.UpdateSupplierQC},
				{Method: http.MethodPost, Path: "/refunds", Handler: h.Admin.CreateRefund},
				{Method: http.MethodGet, Path: "/payouts", Handler: h.Admin.ListPayouts},
				{Method: http.MethodPost, Path: "/payouts", Handler: h.Admin.CreatePayout},
				{Method: http.MethodPatch, Path: "/payouts/:id/status", Handler: h.Admin.UpdatePayoutStatus},
			})
		}

		company := apiGroup.Group("/company")
		company.Use(authMiddleware.RequireAuth())
		{
			addRoutes(company, []route{
				{Method: http.MethodGet, Path: "/settings", Handler: h.Admin.CompanySettings},
				{Method: http.MethodGet, Path: "/tax-rates", Handler: h.Admin.TaxRates},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service and its cache are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(cacheService *cache.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheStatus := "ok"
		if !cacheService.HealthCheck(c.Request.Context()) {
			cacheStatus = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"cache":  cacheStatus,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
