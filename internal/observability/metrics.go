package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_requests_total",
			Help: "Total number of requests",
		},
		[]string{"route", "code", "method"},
	)

	RoomsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_rooms_registered_total",
			Help: "Total rooms registered in the catalog",
		},
	)

	ReservationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_reservations_created_total",
			Help: "Total reservations created",
		},
	)

	ReservationsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_reservations_cancelled_total",
			Help: "Total reservations cancelled",
		},
	)

	ReservationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_reservation_conflicts_total",
			Help: "Total reservations rejected because the room was held",
		},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_rate_limit_exceeded_total",
			Help: "Total rate limit exceeded",
		},
	)
)
