package wire

import (
	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/customers/{id}", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Get("/", customerHandler.GetProfile)
		r.Delete("/", customerHandler.DeleteProfile)
	})
}
