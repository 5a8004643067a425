package bill

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testProfile = Profile{
	Name:    "Test Kitchen",
	Address: "1 Main Road",
	Phone:   "+91-9999999999",
	Email:   "@test_kitchen",
	TaxID:   "GSTIN: 27ABCDE1234F1Z5",
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustAdd(t *testing.T, b *Bill, d Draft) LineItem {
	t.Helper()
	it, err := b.AddItem(d)
	if err != nil {
		t.Fatalf("AddItem(%+v): %v", d, err)
	}
	return it
}

func TestTotalsExample(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "Paneer", Quantity: "2", Price: "150", Plate: PlateFull})
	mustAdd(t, b, Draft{Name: "Rice", Quantity: "1", Price: "80", Plate: PlateHalf})

	got := b.Totals()
	if !got.Subtotal.Equal(dec("380")) {
		t.Errorf("subtotal = %s, want 380", got.Subtotal)
	}
	if !got.TaxAmount.Equal(dec("68.4")) {
		t.Errorf("tax = %s, want 68.4", got.TaxAmount)
	}
	if !got.GrandTotal.Equal(dec("448.4")) {
		t.Errorf("grand total = %s, want 448.4", got.GrandTotal)
	}
}

func TestAddItemDisplayName(t *testing.T) {
	b := New(testProfile, dec("18"))
	it := mustAdd(t, b, Draft{Name: "Chowmein", Quantity: "3", Price: "60.5", Plate: PlateHalf})
	if it.DisplayName != "Chowmein (Half)" {
		t.Errorf("display name = %q", it.DisplayName)
	}
	if it.Quantity != 3 || !it.UnitPrice.Equal(dec("60.5")) {
		t.Errorf("item = %+v", it)
	}

	it = mustAdd(t, b, Draft{Name: "Tea", Quantity: "1", Price: "10"})
	if it.DisplayName != "Tea (Full)" {
		t.Errorf("default plate: display name = %q", it.DisplayName)
	}
}

func TestParsePlate(t *testing.T) {
	tests := []struct {
		in   string
		want Plate
	}{
		{"Half", PlateHalf},
		{"medium", PlateMedium},
		{" LARGE ", PlateLarge},
		{"", PlateFull},
		{"Jumbo", PlateFull},
	}
	for _, tt := range tests {
		if got := ParsePlate(tt.in); got != tt.want {
			t.Errorf("ParsePlate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddItemUnknownPlate(t *testing.T) {
	b := New(testProfile, dec("18"))
	it := mustAdd(t, b, Draft{Name: "Thali", Quantity: "1", Price: "200", Plate: "Jumbo"})
	if it.DisplayName != "Thali (Full)" {
		t.Errorf("display name = %q", it.DisplayName)
	}
	b.StageDraft(Draft{Name: "Thali", Plate: "small"})
	if got := b.Draft().Plate; got != PlateSmall {
		t.Errorf("staged plate = %q", got)
	}
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"empty name", Draft{Quantity: "1", Price: "10"}, "name"},
		{"blank quantity", Draft{Name: "Dal", Price: "10"}, "quantity"},
		{"zero quantity", Draft{Name: "Dal", Quantity: "0", Price: "10"}, "quantity"},
		{"negative quantity", Draft{Name: "Dal", Quantity: "-2", Price: "10"}, "quantity"},
		{"non-numeric quantity", Draft{Name: "Dal", Quantity: "two", Price: "10"}, "quantity"},
		{"fractional quantity", Draft{Name: "Dal", Quantity: "1.5", Price: "10"}, "quantity"},
		{"blank price", Draft{Name: "Dal", Quantity: "1"}, "price"},
		{"non-numeric price", Draft{Name: "Dal", Quantity: "1", Price: "ten"}, "price"},
		{"negative price", Draft{Name: "Dal", Quantity: "1", Price: "-1"}, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(testProfile, dec("18"))
			mustAdd(t, b, Draft{Name: "Roti", Quantity: "4", Price: "12"})
			before := b.Items()

			_, err := b.AddItem(tt.draft)
			if !errors.Is(err, ErrInvalidItem) {
				t.Fatalf("err = %v, want ErrInvalidItem", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("err = %#v, want field %q", err, tt.field)
			}
			if got := b.Items(); len(got) != len(before) {
				t.Fatalf("items changed: %v", got)
			}
		})
	}
}

func TestAddItemAllowsZeroPrice(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "Water", Quantity: "1", Price: "0"})
	if !b.Totals().GrandTotal.IsZero() {
		t.Errorf("grand total = %s, want 0", b.Totals().GrandTotal)
	}
}

func TestSubtotalIsSumOfLineTotals(t *testing.T) {
	b := New(testProfile, dec("5"))
	drafts := []Draft{
		{Name: "A", Quantity: "1", Price: "0.10"},
		{Name: "B", Quantity: "3", Price: "0.20"},
		{Name: "C", Quantity: "7", Price: "99.99"},
		{Name: "D", Quantity: "12", Price: "1.05"},
	}
	want := decimal.Zero
	for _, d := range drafts {
		it := mustAdd(t, b, d)
		want = want.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	got := b.Totals()
	if !got.Subtotal.Equal(want) {
		t.Fatalf("subtotal = %s, want %s", got.Subtotal, want)
	}
	tax := want.Mul(dec("5")).Div(dec("100"))
	if !got.TaxAmount.Equal(tax) {
		t.Errorf("tax = %s, want %s", got.TaxAmount, tax)
	}
	if !got.GrandTotal.Equal(want.Add(tax)) {
		t.Errorf("grand total = %s, want %s", got.GrandTotal, want.Add(tax))
	}
}

func TestTotalsEmptyBill(t *testing.T) {
	b := New(testProfile, dec("18"))
	got := b.Totals()
	if !got.Subtotal.IsZero() || !got.TaxAmount.IsZero() || !got.GrandTotal.IsZero() {
		t.Errorf("totals = %+v, want zeros", got)
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	b := New(testProfile, dec("18"))
	for _, n := range []string{"A", "B", "C", "D"} {
		mustAdd(t, b, Draft{Name: n, Quantity: "1", Price: "1"})
	}
	if !b.RemoveItem(1) {
		t.Fatal("RemoveItem(1) = false")
	}
	want := []string{"A (Full)", "C (Full)", "D (Full)"}
	got := b.Items()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].DisplayName != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, got[i].DisplayName, want[i])
		}
	}
}

func TestRemoveItemOutOfRange(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "A", Quantity: "1", Price: "1"})
	for _, idx := range []int{-1, 1, 99} {
		if b.RemoveItem(idx) {
			t.Errorf("RemoveItem(%d) = true", idx)
		}
	}
	if len(b.Items()) != 1 {
		t.Errorf("items = %v", b.Items())
	}
}

func TestRemoveOnlyItemZeroesTotals(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "Paneer", Quantity: "2", Price: "150"})
	b.RemoveItem(0)
	got := b.Totals()
	if !got.Subtotal.IsZero() || !got.TaxAmount.IsZero() || !got.GrandTotal.IsZero() {
		t.Errorf("totals = %+v, want zeros", got)
	}
}

func TestSetTaxRateUnclamped(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "A", Quantity: "1", Price: "100"})
	for _, rate := range []string{"0", "12.5", "150", "-10"} {
		b.SetTaxRate(dec(rate))
		want := dec(rate)
		if got := b.Totals().TaxAmount; !got.Equal(want) {
			t.Errorf("rate %s: tax = %s, want %s", rate, got, want)
		}
	}
}

func TestSetClientPhoneTruncation(t *testing.T) {
	b := New(testProfile, dec("18"))
	b.SetClient(&Client{Name: "Asha", Phone: "+91 98765-43210 ext"})
	if got := b.Client().Phone; got != "9198765432" {
		t.Errorf("phone = %q", got)
	}
	b.SetClient(nil)
	if b.Client() != nil {
		t.Error("client not cleared")
	}
}

func TestDraftCommitResets(t *testing.T) {
	b := New(testProfile, dec("18"))
	b.StageDraft(Draft{Name: "Momos", Quantity: "2", Price: "70", Plate: PlateSmall})
	if got := b.Draft(); got.Name != "Momos" {
		t.Fatalf("draft = %+v", got)
	}
	it, err := b.CommitDraft()
	if err != nil {
		t.Fatal(err)
	}
	if it.DisplayName != "Momos (Small)" {
		t.Errorf("display name = %q", it.DisplayName)
	}
	if got := b.Draft(); got != EmptyDraft() {
		t.Errorf("draft after commit = %+v", got)
	}
}

func TestDraftKeptOnFailedCommit(t *testing.T) {
	b := New(testProfile, dec("18"))
	d := Draft{Name: "Momos", Price: "70", Plate: PlateLarge}
	b.StageDraft(d)
	if _, err := b.CommitDraft(); err == nil {
		t.Fatal("expected validation error")
	}
	if got := b.Draft(); got != d {
		t.Errorf("draft = %+v, want %+v", got, d)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	b := New(testProfile, dec("18"))
	mustAdd(t, b, Draft{Name: "A", Quantity: "1", Price: "10"})
	b.SetClient(&Client{Name: "Ravi"})
	s := b.Snapshot(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))

	mustAdd(t, b, Draft{Name: "B", Quantity: "1", Price: "10"})
	b.SetClient(&Client{Name: "Someone else"})
	b.SetTaxRate(dec("5"))

	if len(s.Items) != 1 || s.Client.Name != "Ravi" || !s.TaxRate.Equal(dec("18")) {
		t.Errorf("snapshot changed: %+v", s)
	}
	if !s.Totals.GrandTotal.Equal(dec("11.8")) {
		t.Errorf("snapshot grand total = %s", s.Totals.GrandTotal)
	}
}
