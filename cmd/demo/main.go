// Scripted walkthrough of the ledger: register rooms and guests, book,
// pay, cancel, and print the resulting state. Stands in for the
// desktop form the booking core was originally driven by.
package main

import (
	"log"

	"github.com/hotelops/booking-ledger/internal/audit"
	"github.com/hotelops/booking-ledger/internal/domain"
	"github.com/hotelops/booking-ledger/internal/observability"
)

func main() {
	logger := observability.NewLogger()

	recorder, err := audit.NewFileRecorder("audit.log")
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}
	defer recorder.Close()

	ledger := domain.NewLedger("Grand Hotel", domain.WithAuditRecorder(recorder))

	room1, err := ledger.RegisterRoom(101, "Single", 5000)
	if err != nil {
		log.Fatalf("register room 101: %v", err)
	}
	room2, err := ledger.RegisterRoom(102, "Double", 9000)
	if err != nil {
		log.Fatalf("register room 102: %v", err)
	}

	alice, err := ledger.RegisterGuest("Alice", "Johnson", 30)
	if err != nil {
		log.Fatalf("register guest: %v", err)
	}
	bob, err := ledger.RegisterGuest("Bob", "Smith", 0)
	if err != nil {
		log.Fatalf("register guest: %v", err)
	}

	res1, err := ledger.Reserve(alice, room1, "2025-10-01", "2025-10-05")
	if err != nil {
		log.Fatalf("reserve room 101: %v", err)
	}
	res2, err := ledger.Reserve(bob, room2, "2025-10-02", "2025-10-06")
	if err != nil {
		log.Fatalf("reserve room 102: %v", err)
	}

	for _, res := range []*domain.Reservation{res1, res2} {
		payment, err := ledger.ProcessPayment(res)
		if err != nil {
			log.Fatalf("process payment: %v", err)
		}
		logger.WithField("amount", payment.Amount).
			WithField("nights", res.Nights()).
			WithField("quote_with_tax", domain.QuoteTotal(res.Room.Price, res.Nights(), true)).
			Info("payment settled")
	}

	stats := ledger.Stats()
	logger.WithField("rooms", stats.Rooms).
		WithField("guests", stats.Guests).
		WithField("reservations", stats.ActiveReservations).
		WithField("payments", stats.Payments).
		Info(ledger.Name())

	for _, guest := range []*domain.Guest{alice, bob} {
		logger.Info(guest.DisplayInfo())
	}

	if err := ledger.Cancel(res1); err != nil {
		log.Fatalf("cancel reservation: %v", err)
	}

	for _, room := range ledger.AvailableRooms() {
		logger.WithField("price", room.Price).
			WithField("type", string(room.Type)).
			Info("room available", room.Number)
	}
}
