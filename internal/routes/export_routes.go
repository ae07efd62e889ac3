package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"simsea/internal/export"
	"simsea/internal/handlers"
	"simsea/internal/interfaces"
	authmw "simsea/internal/middleware"
	"simsea/internal/services"
)

func RegisterExportRoutes(router chi.Router, records interfaces.RecordRepository, exporter *export.Exporter, publisher *services.ExportPublisher, logger logrus.FieldLogger, authenticate func(http.Handler) http.Handler) {
	exportHandler := handlers.NewExportHandler(records, exporter, publisher, logger)

	router.Route("/exports", func(r chi.Router) {
		r.Use(authenticate, authmw.RequireAdmin)
		r.Get("/records.csv", exportHandler.ExportCSV)
		r.Get("/records.xlsx", exportHandler.ExportXLSX)
		r.Post("/publish", exportHandler.PublishExport)
	})
}
