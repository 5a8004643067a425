package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"restobill/go_backend/internal/domain/bill"
)

type taxRequest struct {
	Rate *decimal.Decimal `json:"rate"`
}

type clientRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SetTax takes any numeric rate; the 0-100 range is a form hint only.
func (h *Handlers) SetTax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Rate == nil {
		http.Error(w, "rate is required", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(b *bill.Bill) error {
		b.SetTaxRate(*req.Rate)
		return nil
	})
}

func (h *Handlers) SetClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.mutate(w, r, func(b *bill.Bill) error {
		b.SetClient(&bill.Client{Name: req.Name, Address: req.Address, Phone: req.Phone})
		return nil
	})
}

func (h *Handlers) ClearClient(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(b *bill.Bill) error {
		b.SetClient(nil)
		return nil
	})
}
