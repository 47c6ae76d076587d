package entity

import (
	"fmt"
	"time"
)

// Seat is a physical location in a hall. Its ID is the display string
// "H5 - A3" and is immutable after provisioning.
type Seat struct {
	ID         string    `db:"id"`
	HallID     string    `db:"hall_id"`
	Row        string    `db:"row"`         // A, B, C, ...
	SeatNumber int       `db:"seat_number"` // 1, 2, 3, ...
	CreatedAt  time.Time `db:"created_at"`
}

// SeatID builds the canonical seat identifier for a hall/row/number.
func SeatID(hallID, row string, number int) string {
	return fmt.Sprintf("%s - %s%d", hallID, row, number)
}
