package wire

import (
	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/halls", hallHandler.GetHalls)
	r.Get("/halls/{id}/seats", hallHandler.GetSeats)

	r.Route("/admin/halls", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", hallHandler.AddHall)
		r.Delete("/{id}", hallHandler.DeleteHall)
		r.Post("/{id}/seats", hallHandler.ProvisionSeats)
	})
}
