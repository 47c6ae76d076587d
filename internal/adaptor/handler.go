package adaptor

import (
	"github.com/Saleh-enab/Cinema-API/internal/usecase"

	"go.uber.org/zap"
)

// Handler bundles every HTTP handler for route wiring.
type Handler struct {
	Auth        *AuthHandler
	Customer    *CustomerHandler
	Movie       *MovieHandler
	Hall        *HallHandler
	Party       *PartyHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Customer:    NewCustomerHandler(service.Customer, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Hall:        NewHallHandler(service.Hall, log),
		Party:       NewPartyHandler(service.Party, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}
