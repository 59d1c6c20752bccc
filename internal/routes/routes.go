package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/audit"
	"github.com/fitreni/coach-scheduler/internal/cache"
	"github.com/fitreni/coach-scheduler/internal/config"
	orderdomain "github.com/fitreni/coach-scheduler/internal/domain/order"
	"github.com/fitreni/coach-scheduler/internal/handlers"
	infraPayment "github.com/fitreni/coach-scheduler/internal/infra/payment"
	infraRepo "github.com/fitreni/coach-scheduler/internal/infra/repository"
	"github.com/fitreni/coach-scheduler/internal/media"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	ucBooking "github.com/fitreni/coach-scheduler/internal/usecase/booking"
	ucOrder "github.com/fitreni/coach-scheduler/internal/usecase/order"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine. rdb may be nil: availability then recomputes on every
// request and invalidation fan-out is disabled.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var slotCache ucBooking.SlotCache
	var invalidator ucBooking.InvalidationPublisher
	if rdb != nil {
		ac := cache.NewAvailabilityCache(rdb, log)
		slotCache = ac
		invalidator = cache.NewInvalidationBus(rdb, ac, log)
	}

	var paymentProvider orderdomain.PaymentProvider
	if cfg.MercadoPagoToken != "" {
		mp, err := infraPayment.NewMercadoPagoProvider(cfg)
		if err != nil {
			log.Warn("payment provider disabled", zap.Error(err))
		} else {
			paymentProvider = mp
		}
	}

	var uploader *media.Uploader
	if cfg.S3Bucket != "" {
		uploader = media.NewUploader(cfg)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache, log)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		invalidator,
		log,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		invalidator,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	checkoutUC := ucOrder.NewCheckout(orderRepo, paymentProvider, auditDispatcher, log)
	markPaidUC := ucOrder.NewMarkPaid(orderRepo, auditDispatcher)
	shipOrderUC := ucOrder.NewShipOrder(orderRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studioHandler := handlers.NewStudioHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, invalidator)
	clientHandler := handlers.NewClientHandler(db)
	windowsHandler := handlers.NewAvailabilityWindowsHandler(db, invalidator)
	blockedHandler := handlers.NewBlockedRangeHandler(db, invalidator)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsByDateUC,
		listBookingsByMonthUC,
	)

	productHandler := handlers.NewProductHandler(db)
	shippingHandler := handlers.NewShippingHandler(db)
	orderHandler := handlers.NewOrderHandler(db, shipOrderUC)
	contentHandler := handlers.NewContentHandler(db)
	mediaHandler := handlers.NewMediaHandler(uploader)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		getAvailabilityUC,
		createBookingUC,
		checkoutUC,
		markPaidUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/content", publicHandler.GetContent)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)

			publicAPI.GET("/:slug/products", publicHandler.ListProducts)
			publicAPI.GET("/:slug/shipping-methods", publicHandler.ListShippingMethods)
			publicAPI.POST("/:slug/checkout", publicHandler.Checkout)
			publicAPI.POST("/:slug/payments/webhook", publicHandler.PaymentWebhook)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/studio", studioHandler.GetMeStudio)
			secured.PATCH("/me/studio", studioHandler.UpdateMeStudio)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/availability-windows", windowsHandler.Get)
			secured.PUT("/me/availability-windows", windowsHandler.Update)

			secured.GET("/me/blocked-ranges", blockedHandler.List)
			secured.POST("/me/blocked-ranges", blockedHandler.Create)
			secured.DELETE("/me/blocked-ranges/:id", blockedHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			// ------------------------------
			// STORE
			// ------------------------------
			secured.GET("/me/store/products", productHandler.List)
			secured.POST("/me/store/products", productHandler.Create)
			secured.PATCH("/me/store/products/:id", productHandler.Update)

			secured.GET("/me/store/shipping-methods", shippingHandler.List)
			secured.POST("/me/store/shipping-methods", shippingHandler.Create)
			secured.PATCH("/me/store/shipping-methods/:id", shippingHandler.Update)

			secured.GET("/me/store/orders", orderHandler.List)
			secured.GET("/me/store/orders/:id", orderHandler.Get)
			secured.PATCH("/me/store/orders/:id/ship", orderHandler.Ship)

			// ------------------------------
			// CONTENT + MEDIA
			// ------------------------------
			secured.GET("/me/content", contentHandler.List)
			secured.PUT("/me/content", contentHandler.Upsert)
			secured.DELETE("/me/content/:id", contentHandler.Delete)

			secured.POST("/me/media", mediaHandler.Upload)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
