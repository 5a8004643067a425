package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"restobill/go_backend/internal/app/config"
	"restobill/go_backend/internal/domain/bill/export"
	"restobill/go_backend/internal/infra/session"
)

type Exporters struct {
	XLSX export.Exporter
	PDF  export.Exporter
}

type Handlers struct {
	Cfg       config.Config
	Store     *session.Store
	Exporters Exporters
	Now       func() time.Time
}

func New(cfg config.Config, store *session.Store, exp Exporters) *Handlers {
	return &Handlers{
		Cfg:       cfg,
		Store:     store,
		Exporters: exp,
		Now:       time.Now,
	}
}

func (h *Handlers) now() time.Time {
	t := h.Now()
	if h.Cfg.Location != nil {
		t = t.In(h.Cfg.Location)
	}
	return t
}

func billID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid bill id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
