package entity

import "github.com/google/uuid"

// Reservation binds one customer to one seat for one party. The
// (party_id, seat_id) pair is unique at the storage layer.
type Reservation struct {
	BaseSimple
	CustomerID uuid.UUID `db:"customer_id"`
	PartyID    uuid.UUID `db:"party_id"`
	SeatID     string    `db:"seat_id"`
}
