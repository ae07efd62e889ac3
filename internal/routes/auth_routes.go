package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"simsea/internal/config"
	"simsea/internal/handlers"
	"simsea/internal/services"
)

func RegisterAuthRoutes(router chi.Router, accounts *services.AccountService, store sessions.Store, cfg *config.Config, logger logrus.FieldLogger, authenticate func(http.Handler) http.Handler) {
	authHandler := handlers.NewAuthHandler(accounts, store, cfg, logger)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(authenticate).Get("/me", authHandler.Me)
	})
}
