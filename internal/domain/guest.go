package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// GuestKey identifies a guest in the roster. Two guests with the same
// name and surname are the same guest.
type GuestKey struct {
	Name    string
	Surname string
}

type Guest struct {
	Name    string
	Surname string
	Age     int // 0 when unknown
	// Reservations holds this guest's active reservations, maintained
	// by the owning ledger.
	Reservations []*Reservation
}

func (g *Guest) Key() GuestKey {
	return GuestKey{Name: g.Name, Surname: g.Surname}
}

func (g *Guest) DisplayInfo() string {
	return fmt.Sprintf("Guest: %s %s, Reservations: %d", g.Name, g.Surname, len(g.Reservations))
}

func (g *Guest) Role() string { return "guest" }

// validateGuestName enforces the roster naming rules: non-empty after
// trimming, at least two characters, and not a pure number.
func validateGuestName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 2 {
		return "", ErrInvalidGuest
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return "", ErrInvalidGuest
	}
	return s, nil
}
