package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"simsea/internal/handlers"
	"simsea/internal/interfaces"
	authmw "simsea/internal/middleware"
)

func RegisterRecordRoutes(router chi.Router, records interfaces.RecordRepository, store sessions.Store, logger logrus.FieldLogger, authenticate func(http.Handler) http.Handler) {
	recordHandler := handlers.NewRecordHandler(records, store, logger)

	router.Route("/records", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", recordHandler.ListRecords)
		r.Post("/", recordHandler.CreateRecord)
		r.With(authmw.RequireAdmin).Get("/summary", recordHandler.SummarizeRecords)
		r.Post("/delete/cancel", recordHandler.CancelDelete)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", recordHandler.GetRecord)
			r.Put("/", recordHandler.UpdateRecord)
			r.Delete("/", recordHandler.RequestDelete)
			r.Post("/delete/confirm", recordHandler.ConfirmDelete)
		})
	})
}
