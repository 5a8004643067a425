package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"restobill/go_backend/internal/app/config"
	"restobill/go_backend/internal/app/http/handlers"
	"restobill/go_backend/internal/app/http/middleware"
	"restobill/go_backend/internal/infra/session"
)

func NewRouter(cfg config.Config, store *session.Store, exp handlers.Exporters) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg, store, exp)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/restaurant", h.Restaurant)

		r.Post("/bills", h.CreateBill)
		r.Route("/bills/{id}", func(r chi.Router) {
			r.Get("/", h.GetBill)
			r.Delete("/", h.DeleteBill)

			r.Post("/items", h.AddItem)
			r.Delete("/items/{index}", h.RemoveItem)

			r.Get("/draft", h.GetDraft)
			r.Put("/draft", h.StageDraft)
			r.Post("/draft/commit", h.CommitDraft)

			r.Put("/tax", h.SetTax)
			r.Put("/client", h.SetClient)
			r.Delete("/client", h.ClearClient)

			r.Get("/totals", h.Totals)
			r.Get("/view", h.View)
			r.Get("/print", h.Print)

			r.Get("/export/xlsx", h.ExportXLSX)
			r.Get("/export/pdf", h.ExportPDF)
		})
	})

	return r
}
