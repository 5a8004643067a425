package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"restobill/go_backend/internal/domain/bill"
)

//go:embed templates/print.html
var templatesFS embed.FS

var printTemplate = template.Must(template.ParseFS(templatesFS, "templates/print.html"))

type printPage struct {
	bill.View
	AutoPrint bool
}

// Print serves the read-only bill page used for printing.
func (h *Handlers) Print(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := printPage{View: bill.Project(snap), AutoPrint: r.URL.Query().Get("autoprint") == "1"}
	if err := printTemplate.Execute(w, page); err != nil {
		log.Printf("print: %v", err)
	}
}
