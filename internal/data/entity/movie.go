package entity

type Movie struct {
	Base
	Name        string  `db:"name"` // unique across all movies
	Genre       string  `db:"genre"`
	Description string  `db:"description"`
	Duration    int     `db:"duration"` // minutes
	Year        int     `db:"year"`
	Rate        float64 `db:"rate"`
	Image       *string `db:"image"`
}
