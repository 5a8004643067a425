package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"restobill/go_backend/internal/domain/bill/export"
)

func (h *Handlers) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.Exporters.XLSX)
}

func (h *Handlers) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.Exporters.PDF)
}

// export renders outside the bill lock; a failed render sends no file.
func (h *Handlers) export(w http.ResponseWriter, r *http.Request, exp export.Exporter) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	if exp == nil {
		http.Error(w, "export unavailable", http.StatusServiceUnavailable)
		return
	}
	doc, err := exp.Export(r.Context(), snap)
	if errors.Is(err, export.ErrRenderUnavailable) {
		http.Error(w, "render unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		log.Printf("export: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body)
}
