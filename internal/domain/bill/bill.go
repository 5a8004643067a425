package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

const phoneDigits = 10

type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Bill is the editable state of one billing session. It is not safe for
// concurrent use; callers serialize access.
type Bill struct {
	profile Profile
	items   []LineItem
	taxRate decimal.Decimal
	client  *Client
	draft   Draft
}

func New(profile Profile, taxRate decimal.Decimal) *Bill {
	return &Bill{
		profile: profile,
		taxRate: taxRate,
		draft:   EmptyDraft(),
	}
}

func (b *Bill) Profile() Profile { return b.profile }

func (b *Bill) TaxRate() decimal.Decimal { return b.taxRate }

func (b *Bill) Items() []LineItem {
	out := make([]LineItem, len(b.items))
	copy(out, b.items)
	return out
}

// AddItem validates d and appends it. On success the staged draft is reset.
func (b *Bill) AddItem(d Draft) (LineItem, error) {
	it, err := d.lineItem()
	if err != nil {
		return LineItem{}, err
	}
	b.items = append(b.items, it)
	b.draft = EmptyDraft()
	return it, nil
}

// RemoveItem deletes the item at index and reports whether anything was
// removed. An out-of-range index is ignored.
func (b *Bill) RemoveItem(index int) bool {
	if index < 0 || index >= len(b.items) {
		return false
	}
	items := make([]LineItem, 0, len(b.items)-1)
	items = append(items, b.items[:index]...)
	b.items = append(items, b.items[index+1:]...)
	return true
}

// SetTaxRate accepts any value, including negatives and values above 100.
func (b *Bill) SetTaxRate(percent decimal.Decimal) {
	b.taxRate = percent
}

func (b *Bill) Client() *Client {
	if b.client == nil {
		return nil
	}
	c := *b.client
	return &c
}

// SetClient stores the client details. The phone keeps at most ten digits,
// everything else is dropped. A nil client clears the details.
func (b *Bill) SetClient(c *Client) {
	if c == nil {
		b.client = nil
		return
	}
	cp := *c
	cp.Phone = digitsOnly(cp.Phone, phoneDigits)
	b.client = &cp
}

func (b *Bill) Draft() Draft { return b.draft }

func (b *Bill) StageDraft(d Draft) {
	d.Plate = ParsePlate(string(d.Plate))
	b.draft = d
}

func (b *Bill) CommitDraft() (LineItem, error) {
	return b.AddItem(b.draft)
}

func (b *Bill) Totals() Totals {
	return ComputeTotals(b.items, b.taxRate)
}

func ComputeTotals(items []LineItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Snapshot is a point-in-time copy of a bill, detached from later edits.
type Snapshot struct {
	Profile  Profile         `json:"restaurant"`
	Items    []LineItem      `json:"items"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Client   *Client         `json:"client,omitempty"`
	Totals   Totals          `json:"totals"`
	IssuedAt time.Time       `json:"issued_at"`
}

func (b *Bill) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Profile:  b.profile,
		Items:    b.Items(),
		TaxRate:  b.taxRate,
		Client:   b.Client(),
		Totals:   b.Totals(),
		IssuedAt: now,
	}
}

func digitsOnly(s string, max int) string {
	out := make([]byte, 0, max)
	for i := 0; i < len(s) && len(out) < max; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
