package wire

import (
	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/customers/reservations", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/", reservationHandler.Reserve)
		r.Get("/", reservationHandler.GetMyReservations)
		r.Delete("/{id}", reservationHandler.Cancel)
	})

	r.Route("/customers/parties/{partyId}", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Get("/", reservationHandler.GetPartySeats)
	})
}
