package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restobill/go_backend/internal/domain/bill"
)

// formValue accepts a JSON string, number or null the way a form input
// would hand it over; parsing happens in the bill model.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	switch {
	case string(b) == "null":
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
	default:
		*v = formValue(b)
	}
	return nil
}

type ItemRequest struct {
	Name     string     `json:"name"`
	Quantity formValue  `json:"quantity"`
	Price    formValue  `json:"price"`
	Plate    bill.Plate `json:"plate"`
}

func (req ItemRequest) draft() bill.Draft {
	return bill.Draft{
		Name:     req.Name,
		Quantity: string(req.Quantity),
		Price:    string(req.Price),
		Plate:    req.Plate,
	}
}

func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(b *bill.Bill) error {
		_, err := b.AddItem(req.draft())
		return err
	})
}

// RemoveItem ignores indexes that are out of range.
func (h *Handlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(b *bill.Bill) error {
		b.RemoveItem(idx)
		return nil
	})
}

func (h *Handlers) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := billID(w, r)
	if !ok {
		return
	}
	var d bill.Draft
	err := h.Store.Do(id, func(b *bill.Bill) error {
		d = b.Draft()
		return nil
	})
	if h.storeError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) StageDraft(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(b *bill.Bill) error {
		b.StageDraft(req.draft())
		return nil
	})
}

func (h *Handlers) CommitDraft(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(b *bill.Bill) error {
		_, err := b.CommitDraft()
		return err
	})
}
