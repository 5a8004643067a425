package bill

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	Currency   = "₹"
	DateLayout = "02 Jan 2006"
)

// View is the static, display-only rendering of a bill: no inputs, no
// buttons, every value already formatted for print.
type View struct {
	Restaurant Profile   `json:"restaurant"`
	Date       string    `json:"date"`
	Day        string    `json:"day"`
	Client     *Client   `json:"client,omitempty"`
	TaxRate    string    `json:"tax_rate"`
	TaxLabel   string    `json:"tax_label"`
	Columns    []string  `json:"columns"`
	Rows       []ViewRow `json:"rows"`
	Subtotal   string    `json:"subtotal"`
	TaxAmount  string    `json:"tax_amount"`
	GrandTotal string    `json:"grand_total"`
}

type ViewRow struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

var ViewColumns = []string{"Item", "Qty", "Price", "Total"}

// Project maps a snapshot to its printable form.
func Project(s Snapshot) View {
	v := View{
		Restaurant: s.Profile,
		Date:       s.IssuedAt.Format(DateLayout),
		Day:        s.IssuedAt.Weekday().String(),
		Client:     s.Client,
		TaxRate:    s.TaxRate.String(),
		TaxLabel:   TaxLabel(s.TaxRate),
		Columns:    ViewColumns,
		Rows:       make([]ViewRow, 0, len(s.Items)),
		Subtotal:   Money(s.Totals.Subtotal),
		TaxAmount:  Money(s.Totals.TaxAmount),
		GrandTotal: Money(s.Totals.GrandTotal),
	}
	for _, it := range s.Items {
		v.Rows = append(v.Rows, ViewRow{
			Item:     it.DisplayName,
			Quantity: strconv.Itoa(it.Quantity),
			Price:    Money(it.UnitPrice),
			Total:    Money(it.Total()),
		})
	}
	return v
}

func Money(d decimal.Decimal) string {
	return Currency + d.StringFixed(2)
}

func TaxLabel(rate decimal.Decimal) string {
	return "GST (" + rate.String() + "%)"
}
