package wire

import (
	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public browsing.
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/movies/{id}", movieHandler.GetMovie)

	r.Route("/admin/movies", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", movieHandler.AddMovie)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
