package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "simsea/docs"
)

const swaggerIndex = "/swagger/index.html"

func redirectToSwagger(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, swaggerIndex, http.StatusMovedPermanently)
}

// RegisterSwaggerRoutes serves the API docs with every tag collapsed.
func RegisterSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", redirectToSwagger)
	r.Get("/swagger/", redirectToSwagger)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(false),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.PersistAuthorization(true),
	))
}
