package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Booking-Operations-Backend/internal/api/middleware"
	"github.com/ndewijer/Booking-Operations-Backend/internal/config"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
)

// maxRequestBytes caps request bodies; every payload here is a handful of fields.
const maxRequestBytes = 1 << 20

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	bookingService *service.BookingService,
	analyticsService *service.AnalyticsService,
	fxService *service.FxService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxRequestBytes))

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/booking", func(r chi.Router) {
			bookingHandler := handlers.NewBookingHandler(bookingService, analyticsService)
			r.Get("/", bookingHandler.Bookings)
			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/analytics", bookingHandler.Analytics)
		})

		r.Route("/fx", func(r chi.Router) {
			fxHandler := handlers.NewFxHandler(fxService)
			r.Get("/rate", fxHandler.Rates)
			r.Post("/rate", fxHandler.UpsertRate)
			r.Get("/matrix", fxHandler.Matrix)
			r.Get("/matrix/all", fxHandler.Matrices)
			r.Get("/spread", fxHandler.Spread)

			r.Route("/spread/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", fxHandler.UpdateSpread)
			})
		})
	})

	return r
}
