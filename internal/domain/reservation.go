package domain

import (
	"time"

	"github.com/google/uuid"
)

// dateLayout is the format the front ends send check-in and check-out
// dates in. The dates are display data, not state-machine inputs.
const dateLayout = "2006-01-02"

type Reservation struct {
	ID       uuid.UUID
	Guest    *Guest
	Room     *Room
	CheckIn  string
	CheckOut string
}

func newReservation(guest *Guest, room *Room, checkIn, checkOut string) *Reservation {
	return &Reservation{
		ID:       uuid.New(),
		Guest:    guest,
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

// Nights returns the stay length in whole days, never less than 1.
// Malformed dates fall back to a single night instead of failing the
// booking.
func (r *Reservation) Nights() int {
	in, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return 1
	}
	out, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
