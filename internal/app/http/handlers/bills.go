package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"restobill/go_backend/internal/app/config"
	"restobill/go_backend/internal/domain/bill"
	"restobill/go_backend/internal/infra/session"
)

type billResponse struct {
	ID string `json:"id"`
	bill.Snapshot
	Draft bill.Draft `json:"draft"`
}

func (h *Handlers) Restaurant(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.Restaurant())
}

func (h *Handlers) CreateBill(w http.ResponseWriter, r *http.Request) {
	id, err := h.Store.Create()
	if err != nil {
		log.Printf("bills: create failed: %v", err)
		http.Error(w, "create failed", http.StatusInternalServerError)
		return
	}
	h.respond(w, http.StatusCreated, id)
}

func (h *Handlers) GetBill(w http.ResponseWriter, r *http.Request) {
	id, ok := billID(w, r)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK, id)
}

func (h *Handlers) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, ok := billID(w, r)
	if !ok {
		return
	}
	if !h.Store.Delete(id) {
		http.Error(w, "bill not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Totals(w http.ResponseWriter, r *http.Request) {
	id, ok := billID(w, r)
	if !ok {
		return
	}
	var totals bill.Totals
	err := h.Store.Do(id, func(b *bill.Bill) error {
		totals = b.Totals()
		return nil
	})
	if h.storeError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bill.Project(snap))
}

// mutate applies fn to the bill and replies with the resulting state.
func (h *Handlers) mutate(w http.ResponseWriter, r *http.Request, fn func(b *bill.Bill) error) {
	id, ok := billID(w, r)
	if !ok {
		return
	}
	var resp billResponse
	err := h.Store.Do(id, func(b *bill.Bill) error {
		if err := fn(b); err != nil {
			return err
		}
		resp = h.state(id, b)
		return nil
	})
	var verr *bill.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"warning": bill.FillAllFieldsWarning,
			"field":   verr.Field,
		})
		return
	}
	if h.storeError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) respond(w http.ResponseWriter, status int, id uuid.UUID) {
	var resp billResponse
	err := h.Store.Do(id, func(b *bill.Bill) error {
		resp = h.state(id, b)
		return nil
	})
	if h.storeError(w, err) {
		return
	}
	writeJSON(w, status, resp)
}

func (h *Handlers) state(id uuid.UUID, b *bill.Bill) billResponse {
	return billResponse{
		ID:       id.String(),
		Snapshot: b.Snapshot(h.now()),
		Draft:    b.Draft(),
	}
}

func (h *Handlers) snapshot(w http.ResponseWriter, r *http.Request) (bill.Snapshot, bool) {
	id, ok := billID(w, r)
	if !ok {
		return bill.Snapshot{}, false
	}
	var snap bill.Snapshot
	err := h.Store.Do(id, func(b *bill.Bill) error {
		snap = b.Snapshot(h.now())
		return nil
	})
	if h.storeError(w, err) {
		return bill.Snapshot{}, false
	}
	return snap, true
}

// storeError writes a response for err and reports whether it did.
func (h *Handlers) storeError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrNotFound):
		http.Error(w, "bill not found", http.StatusNotFound)
	default:
		log.Printf("bills: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return true
}
