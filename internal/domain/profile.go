package domain

import "fmt"

// Profile is implemented by anyone the hotel keeps a record of.
type Profile interface {
	DisplayInfo() string
	Role() string
}

// Staff is a hotel employee. Staff never hold reservations, so it
// shares no fields with Guest.
type Staff struct {
	Name     string
	Surname  string
	Position string
}

func (s *Staff) DisplayInfo() string {
	return fmt.Sprintf("Staff: %s %s (%s)", s.Name, s.Surname, s.Position)
}

func (s *Staff) Role() string { return "staff" }
