package domain

import "math"

// TaxRate applies when a quote includes tax.
const TaxRate = 0.18

// QuoteTotal prices a stay: base price times nights, plus tax when
// requested, rounded half away from zero to two decimals. Display
// arithmetic only, not a money ledger.
func QuoteTotal(basePrice float64, nights int, includeTax bool) float64 {
	total := basePrice * float64(nights)
	if includeTax {
		total *= 1 + TaxRate
	}
	return math.Round(total*100) / 100
}

// FindMaxPriceRoom scans a grid of room references row by row and
// returns the room with the strictly highest price; the first one seen
// wins a tie. Rows may be ragged and cells may be nil.
func FindMaxPriceRoom(grid [][]*Room) (*Room, error) {
	cells := 0
	for _, row := range grid {
		cells += len(row)
	}
	if cells == 0 {
		return nil, ErrEmptyGrid
	}

	var best *Room
	for _, row := range grid {
		for _, room := range row {
			if room == nil {
				continue
			}
			if best == nil || room.Price > best.Price {
				best = room
			}
		}
	}
	if best == nil {
		// Reached when every cell of a non-empty grid is nil.
		return nil, ErrNoRoomInGrid
	}
	return best, nil
}
