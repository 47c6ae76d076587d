package wire

import (
	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireParty(
	r chi.Router,
	partyHandler *adaptor.PartyHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/parties", partyHandler.GetParties)
	r.Get("/parties/{id}", partyHandler.GetParty)

	r.Route("/admin/parties", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", partyHandler.AddParty)
		r.Patch("/{id}", partyHandler.UpdateParty)
		r.Delete("/{id}", partyHandler.DeleteParty)
	})
}
