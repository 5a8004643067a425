package xlsx

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"restobill/go_backend/internal/domain/bill"
	"restobill/go_backend/internal/domain/bill/export"
)

const (
	SheetName   = "Restaurant Bill"
	Filename    = "Restaurant_Bill.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	title          = "Restaurant Bill"
	currencyFormat = `"₹"#,##0.00`
	emptyCellWidth = 10
	numColumns     = 4
)

var HeaderLabels = []string{"Item", "Quantity", "Price (INR)", "Total"}

type Exporter struct{}

func New() *Exporter { return &Exporter{} }

type styles struct {
	title, label, header, money, summaryLabel, summaryMoney int
}

func (e *Exporter) Export(ctx context.Context, s bill.Snapshot) (export.Document, error) {
	if err := ctx.Err(); err != nil {
		return export.Document{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return export.Document{}, err
	}
	st, err := newStyles(f)
	if err != nil {
		return export.Document{}, fmt.Errorf("xlsx styles: %w", err)
	}

	w := &sheetWriter{f: f, widths: make([]int, numColumns)}

	w.set(1, 1, title)
	w.merge(1, numColumns, title, st.title)

	row := 3
	for _, kv := range metadata(s) {
		w.set(row, 1, kv[0])
		w.set(row, 2, kv[1])
		w.style(row, 1, row, 2, st.label)
		row++
	}
	row++

	headerRow := row
	for i, h := range HeaderLabels {
		w.set(row, i+1, h)
	}
	w.style(row, 1, row, numColumns, st.header)
	row++

	for _, it := range s.Items {
		w.set(row, 1, it.DisplayName)
		w.set(row, 2, it.Quantity)
		w.set(row, 3, it.UnitPrice.InexactFloat64())
		w.set(row, 4, it.Total().InexactFloat64())
		w.style(row, 3, row, 4, st.money)
		row++
	}
	row++

	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal", s.Totals.Subtotal.InexactFloat64()},
		{bill.TaxLabel(s.TaxRate), s.Totals.TaxAmount.InexactFloat64()},
		{"Total Amount", s.Totals.GrandTotal.InexactFloat64()},
	}
	for _, line := range summary {
		w.set(row, 3, line.label)
		w.set(row, 4, line.value)
		w.style(row, 3, row, 3, st.summaryLabel)
		w.style(row, 4, row, 4, st.summaryMoney)
		row++
	}

	if err := w.err; err != nil {
		return export.Document{}, fmt.Errorf("xlsx write: %w", err)
	}
	if err := w.applyWidths(); err != nil {
		return export.Document{}, fmt.Errorf("xlsx widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("bill xlsx: write failed: %v", err)
		return export.Document{}, err
	}
	log.Printf("bill xlsx: %d items, header row %d, %d bytes", len(s.Items), headerRow, buf.Len())
	return export.Document{
		Filename:    Filename,
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}, nil
}

func metadata(s bill.Snapshot) [][2]string {
	p := s.Profile
	rows := [][2]string{
		{"Date", s.IssuedAt.Format(bill.DateLayout)},
		{"Day", s.IssuedAt.Weekday().String()},
		{"Restaurant Name", p.Name},
		{"Address", p.Address},
		{"Phone", p.Phone},
		{"Email", p.Email},
		{"GST No.", p.TaxID},
	}
	if p.SecondaryRegistrationID != "" {
		rows = append(rows, [2]string{"Reg. No.", p.SecondaryRegistrationID})
	}
	if c := s.Client; c != nil {
		rows = append(rows,
			[2]string{"Client Name", c.Name},
			[2]string{"Client Address", c.Address},
			[2]string{"Client Phone", c.Phone},
		)
	}
	return rows
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	numFmt := currencyFormat
	thin := []excelize.Border{
		{Type: "top", Color: "000000", Style: 1},
		{Type: "left", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&st.label, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"007BFF"}},
			Border:    thin,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.money, &excelize.Style{CustomNumFmt: &numFmt}},
		{&st.summaryLabel, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&st.summaryMoney, &excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &numFmt}},
	}
	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return st, err
		}
	}
	return st, nil
}
