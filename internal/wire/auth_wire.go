package wire

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/adaptor"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	r.Route("/auth", func(r chi.Router) {
		// Credential endpoints get a tight rate limit to slow brute force.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rdb, 10, time.Minute, log))

			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/login", authHandler.Login)
			r.Post("/token", authHandler.RefreshToken)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.JWT, log))

			r.Post("/logout", authHandler.Logout)
			r.Post("/verify-email", authHandler.VerifyEmail)
			r.Post("/resend-otp", authHandler.ResendOTP)
		})
	})
}
