package usecase

import (
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/events"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Customer    CustomerService
	Movie       MovieService
	Hall        HallService
	Party       PartyService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, clk clock.Clock, publisher events.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo.Customer, config, clk, publisher, log),
		Customer:    NewCustomerService(repo.Customer, log),
		Movie:       NewMovieService(repo, log),
		Hall:        NewHallService(repo, clk, log),
		Party:       NewPartyService(repo, clk, log),
		Reservation: NewReservationService(repo, clk, publisher, log),
	}
}
