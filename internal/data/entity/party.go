package entity

import (
	"time"

	"github.com/google/uuid"
)

// Party is a scheduled screening of a movie in a hall over [StartTime,
// EndTime). Within one hall no two party intervals may overlap.
type Party struct {
	Base
	MovieID     uuid.UUID `db:"movie_id"`
	HallID      string    `db:"hall_id"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	TicketPrice float64   `db:"ticket_price"`
}

// Overlaps reports whether [newStart, newEnd) collides with the party's
// own half-open interval. The three clauses are: new start falls inside
// this party, new end falls inside this party, or this party is fully
// contained in the new interval. An interval ending exactly when another
// begins does not overlap.
func (p *Party) Overlaps(newStart, newEnd time.Time) bool {
	if !p.StartTime.After(newStart) && p.EndTime.After(newStart) {
		return true
	}
	if p.StartTime.Before(newEnd) && !p.EndTime.Before(newEnd) {
		return true
	}
	if !p.StartTime.Before(newStart) && !p.EndTime.After(newEnd) {
		return true
	}
	return false
}
