package entity

import "time"

// Hall is identified by a human-assigned code like "H5"; the code is the
// stable identifier shown to clients, not a surrogate key.
type Hall struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
