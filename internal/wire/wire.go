package wire

import (
	"net/http"

	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/events"
	"github.com/Saleh-enab/Cinema-API/internal/usecase"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, rdb *redis.Client, publisher events.Publisher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, clock.NewSystem(), publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, rdb, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, rdb, logger)
	wireCustomer(r, handler.Customer, config, logger)
	wireMovie(r, handler.Movie, config, logger)
	wireHall(r, handler.Hall, config, logger)
	wireParty(r, handler.Party, config, logger)
	wireReservation(r, handler.Reservation, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
