package repository

import (
	"github.com/Saleh-enab/Cinema-API/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie       MovieRepository
	Hall        HallRepository
	Seat        SeatRepository
	Party       PartyRepository
	Customer    CustomerRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:       NewMovieRepository(db, log),
		Hall:        NewHallRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Party:       NewPartyRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
