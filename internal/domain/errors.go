package domain

import "errors"

var (
	ErrInvalidGuest        = errors.New("invalid guest data")
	ErrInvalidRoomType     = errors.New("invalid room type")
	ErrInvalidPrice        = errors.New("invalid room price")
	ErrDuplicateRoom       = errors.New("duplicate room number")
	ErrRoomNotAvailable    = errors.New("room not available")
	ErrUnknownRoom         = errors.New("unknown room")
	ErrUnknownGuest        = errors.New("unknown guest")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrEmptyGrid           = errors.New("empty room grid")
	ErrNoRoomInGrid        = errors.New("no room in grid")
)
