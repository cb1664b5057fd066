package domain

import "github.com/google/uuid"

// Payment settles a reservation at the room's nightly price, captured
// at creation time.
type Payment struct {
	ID          uuid.UUID
	Reservation *Reservation
	Amount      float64
	Paid        bool
}

func newPayment(res *Reservation) *Payment {
	return &Payment{
		ID:          uuid.New(),
		Reservation: res,
		Amount:      res.Room.Price,
	}
}
