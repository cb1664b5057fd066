package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hotelops/booking-ledger/internal/idempotency"
	"github.com/hotelops/booking-ledger/internal/observability"
	"github.com/hotelops/booking-ledger/internal/rateLimit"
)

func SetupRouter(h *Handlers, logger observability.Logger, rl *rateLimit.RateLimiter, idemp *idempotency.Idempotency) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(MetricsMiddleware)
	r.Use(TracingMiddleware)
	r.Use(RateLimitMiddleware(rl))
	r.Use(IdempotencyMiddleware(idemp))

	r.Post("/v1/rooms", h.CreateRoom)
	r.Get("/v1/rooms/available", h.AvailableRooms)
	r.Post("/v1/guests", h.CreateGuest)
	r.Get("/v1/guests", h.GetGuest)
	r.Post("/v1/reservations", h.CreateReservation)
	r.Delete("/v1/reservations/{id}", h.CancelReservation)
	r.Get("/v1/quote", h.Quote)
	r.Post("/v1/payments", h.CreatePayment)
	r.Get("/v1/stats", h.Stats)
	r.Get("/v1/healthz", h.Healthz)
	r.Get("/v1/readyz", h.Readyz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
