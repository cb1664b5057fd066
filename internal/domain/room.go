package domain

import "strings"

// RoomType is one of the four recognized room categories.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
	RoomDeluxe RoomType = "Deluxe"
)

// ParseRoomType matches a type tag case-insensitively.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return RoomSingle, nil
	case "double":
		return RoomDouble, nil
	case "suite":
		return RoomSuite, nil
	case "deluxe":
		return RoomDeluxe, nil
	default:
		return "", ErrInvalidRoomType
	}
}

type Room struct {
	Number    int
	Type      RoomType
	Price     float64
	Available bool
}

// SameRoom reports whether two rooms are the same catalog entry.
// Room identity is the number alone.
func SameRoom(a, b *Room) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Number == b.Number
}

// ByPrice orders rooms by nightly price, cheapest first.
func ByPrice(a, b *Room) int {
	switch {
	case a.Price < b.Price:
		return -1
	case a.Price > b.Price:
		return 1
	default:
		return 0
	}
}

// TotalOf sums the nightly prices of the given rooms.
func TotalOf(rooms ...*Room) float64 {
	var total float64
	for _, r := range rooms {
		if r != nil {
			total += r.Price
		}
	}
	return total
}

// MatchesType reports whether the room's type matches the tag,
// ignoring case.
func (r *Room) MatchesType(tag string) bool {
	return strings.EqualFold(string(r.Type), strings.TrimSpace(tag))
}
