package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"simsea/internal/handlers"
	authmw "simsea/internal/middleware"
	"simsea/internal/services"
)

func RegisterUserRoutes(router chi.Router, accounts *services.AccountService, logger logrus.FieldLogger, authenticate func(http.Handler) http.Handler) {
	userHandler := handlers.NewUserHandler(accounts, logger)

	router.Route("/users", func(r chi.Router) {
		r.Use(authenticate, authmw.RequireAdmin)
		r.Get("/", userHandler.ListUsers)
	})
}
