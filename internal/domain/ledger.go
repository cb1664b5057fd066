// Package domain implements the booking ledger: the single owner of
// the room catalog, the guest roster, and all active reservations.
// Every mutating operation validates fully before touching state, so
// a failed call leaves the ledger exactly as it found it.
package domain

import (
	"sync"

	"github.com/hotelops/booking-ledger/internal/audit"
)

type Ledger struct {
	mu sync.Mutex

	name      string
	rooms     map[int]*Room
	roomOrder []*Room
	guests    map[GuestKey]*Guest

	reservations []*Reservation
	payments     []*Payment

	roomCount int

	recorder audit.Recorder
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithAuditRecorder wires a sink that receives an event for every
// state-changing operation. Recording failures never fail the
// operation.
func WithAuditRecorder(r audit.Recorder) Option {
	return func(l *Ledger) {
		l.recorder = r
	}
}

func NewLedger(name string, opts ...Option) *Ledger {
	l := &Ledger{
		name:   name,
		rooms:  make(map[int]*Room),
		guests: make(map[GuestKey]*Guest),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) Name() string { return l.name }

func (l *Ledger) record(level, action string, fields map[string]interface{}) {
	if l.recorder == nil {
		return
	}
	_ = l.recorder.Record(audit.NewEvent(level, action, fields))
}

// RegisterRoom adds a room to the catalog. A duplicate number is a
// configuration error, not an update.
func (l *Ledger) RegisterRoom(number int, roomType string, price float64) (*Room, error) {
	rt, err := ParseRoomType(roomType)
	if err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.rooms[number]; exists {
		return nil, ErrDuplicateRoom
	}

	room := &Room{Number: number, Type: rt, Price: price, Available: true}
	l.rooms[number] = room
	l.roomOrder = append(l.roomOrder, room)
	l.roomCount++

	l.record("info", "room.registered", map[string]interface{}{
		"room":  number,
		"type":  string(rt),
		"price": price,
	})
	return room, nil
}

// RegisterGuest adds a guest to the roster. Registration is idempotent
// on the (name, surname) key: re-registering returns the existing
// guest unchanged.
func (l *Ledger) RegisterGuest(name, surname string, age int) (*Guest, error) {
	name, err := validateGuestName(name)
	if err != nil {
		return nil, err
	}
	surname, err = validateGuestName(surname)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := GuestKey{Name: name, Surname: surname}
	if existing, ok := l.guests[key]; ok {
		return existing, nil
	}

	guest := &Guest{Name: name, Surname: surname, Age: age}
	l.guests[key] = guest

	l.record("info", "guest.registered", map[string]interface{}{
		"name":    name,
		"surname": surname,
	})
	return guest, nil
}

// FindGuest looks a guest up by key. No side effects. The returned
// guest is the live roster entry for use with Reserve; read its
// mutable fields through GuestInfo instead.
func (l *Ledger) FindGuest(name, surname string) (*Guest, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	g, ok := l.guests[GuestKey{Name: name, Surname: surname}]
	return g, ok
}

// GuestInfo is a point-in-time copy of a roster entry, safe to read
// without the ledger lock.
type GuestInfo struct {
	Name         string
	Surname      string
	Age          int
	Reservations int
}

func (l *Ledger) GuestInfo(name, surname string) (GuestInfo, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	g, ok := l.guests[GuestKey{Name: name, Surname: surname}]
	if !ok {
		return GuestInfo{}, false
	}
	return GuestInfo{
		Name:         g.Name,
		Surname:      g.Surname,
		Age:          g.Age,
		Reservations: len(g.Reservations),
	}, true
}

// Reserve books a room for a guest. Both must already be registered in
// this ledger. The availability flip and the two list appends happen
// under one lock, so no caller observes them half done.
func (l *Ledger) Reserve(guest *Guest, room *Room, checkIn, checkOut string) (*Reservation, error) {
	if guest == nil {
		return nil, ErrUnknownGuest
	}
	if room == nil {
		return nil, ErrUnknownRoom
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.guests[guest.Key()] != guest {
		return nil, ErrUnknownGuest
	}
	if l.rooms[room.Number] != room {
		return nil, ErrUnknownRoom
	}
	if !room.Available {
		return nil, ErrRoomNotAvailable
	}

	res := newReservation(guest, room, checkIn, checkOut)
	room.Available = false
	guest.Reservations = append(guest.Reservations, res)
	l.reservations = append(l.reservations, res)

	l.record("info", "reservation.created", map[string]interface{}{
		"reservation": res.ID.String(),
		"room":        room.Number,
		"guest":       guest.Name + " " + guest.Surname,
		"check_in":    checkIn,
		"check_out":   checkOut,
	})
	return res, nil
}

// Cancel destroys an active reservation, restoring the room's
// availability and removing it from both the guest's and the ledger's
// lists. An untracked reservation is reported without side effects.
func (l *Ledger) Cancel(res *Reservation) error {
	if res == nil {
		return ErrReservationNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, r := range l.reservations {
		if r == res {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrReservationNotFound
	}

	l.reservations = append(l.reservations[:idx], l.reservations[idx+1:]...)
	for i, r := range res.Guest.Reservations {
		if r == res {
			res.Guest.Reservations = append(res.Guest.Reservations[:i], res.Guest.Reservations[i+1:]...)
			break
		}
	}
	res.Room.Available = true

	l.record("info", "reservation.cancelled", map[string]interface{}{
		"reservation": res.ID.String(),
		"room":        res.Room.Number,
	})
	return nil
}

// FindRoom resolves a catalog entry by number. The returned room is
// the live entry for use with Reserve; read its mutable fields
// through RoomInfo instead.
func (l *Ledger) FindRoom(number int) (*Room, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.rooms[number]
	return r, ok
}

// RoomInfo returns a point-in-time copy of a catalog entry, safe to
// read without the ledger lock.
func (l *Ledger) RoomInfo(number int) (Room, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.rooms[number]
	if !ok {
		return Room{}, false
	}
	return *r, true
}

// FindReservation resolves a reservation by ID.
func (l *Ledger) FindReservation(id string) (*Reservation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.reservations {
		if r.ID.String() == id {
			return r, true
		}
	}
	return nil, false
}

// AvailableRooms returns a snapshot of every free room in catalog
// insertion order. The copies are safe to read while other callers
// reserve and cancel.
func (l *Ledger) AvailableRooms() []Room {
	l.mu.Lock()
	defer l.mu.Unlock()

	var free []Room
	for _, r := range l.roomOrder {
		if r.Available {
			free = append(free, *r)
		}
	}
	return free
}

// ProcessPayment settles a tracked reservation at the room's nightly
// price.
func (l *Ledger) ProcessPayment(res *Reservation) (*Payment, error) {
	if res == nil {
		return nil, ErrReservationNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tracked := false
	for _, r := range l.reservations {
		if r == res {
			tracked = true
			break
		}
	}
	if !tracked {
		return nil, ErrReservationNotFound
	}

	p := newPayment(res)
	p.Paid = true
	l.payments = append(l.payments, p)

	l.record("info", "payment.settled", map[string]interface{}{
		"payment":     p.ID.String(),
		"reservation": res.ID.String(),
		"amount":      p.Amount,
	})
	return p, nil
}

// RoomCount reports how many rooms have ever been registered.
func (l *Ledger) RoomCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roomCount
}

// Stats is a point-in-time summary for reporting.
type Stats struct {
	Rooms              int
	Guests             int
	ActiveReservations int
	Payments           int
}

func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		Rooms:              l.roomCount,
		Guests:             len(l.guests),
		ActiveReservations: len(l.reservations),
		Payments:           len(l.payments),
	}
}
