package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"restobill/go_backend/internal/domain/bill"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// block is one horizontal band of the picture.
type block struct {
	height int
	draw   func(dst *image.RGBA, top int)
}

// column x positions as a fraction of the content width
var columnStops = []float64{0, 0.55, 0.68, 0.84}

func (r *Rasterizer) layout(v bill.View, fs faces) []block {
	p := v.Restaurant
	var out []block

	out = append(out, r.textLine(fs.title, accent, p.Name, alignCenter))
	out = append(out, r.textLine(fs.body, ink, p.Address, alignCenter))
	out = append(out, r.textLine(fs.body, ink, p.Phone+" | "+p.Email, alignCenter))
	out = append(out, r.textLine(fs.bold, ink, p.TaxID, alignCenter))
	if p.SecondaryRegistrationID != "" {
		out = append(out, r.textLine(fs.bold, ink, p.SecondaryRegistrationID, alignCenter))
	}
	out = append(out, r.textLine(fs.small, ink, "Date: "+v.Date+" | Day: "+v.Day, alignCenter))
	out = append(out, r.hr())

	if c := v.Client; c != nil {
		out = append(out, r.textLine(fs.body, ink, "Client Name: "+c.Name, alignLeft))
		out = append(out, r.textLine(fs.body, ink, "Client Address: "+c.Address, alignLeft))
		out = append(out, r.textLine(fs.body, ink, "Client Phone: "+c.Phone, alignLeft))
	}
	out = append(out, r.textLine(fs.body, ink, "GST (%): "+v.TaxRate, alignLeft))
	out = append(out, r.hr())

	out = append(out, r.row(fs.bold, v.Columns))
	for _, row := range v.Rows {
		out = append(out, r.row(fs.body, []string{row.Item, row.Quantity, row.Price, row.Total}))
	}
	out = append(out, r.hr())

	out = append(out, r.textLine(fs.body, ink, "Subtotal: "+v.Subtotal, alignRight))
	out = append(out, r.textLine(fs.body, ink, v.TaxLabel+": "+v.TaxAmount, alignRight))
	out = append(out, r.textLine(fs.bold, ink, "Total Amount: "+v.GrandTotal, alignRight))
	return out
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil() + lineGap
}

func (r *Rasterizer) textLine(face font.Face, src image.Image, s string, a align) block {
	s = glyphFallback.Replace(s)
	contentW := r.width - 2*margin
	s = fit(face, s, contentW)
	return block{
		height: lineHeight(face),
		draw: func(dst *image.RGBA, top int) {
			w := font.MeasureString(face, s).Ceil()
			x := margin
			switch a {
			case alignCenter:
				x = margin + (contentW-w)/2
			case alignRight:
				x = r.width - margin - w
			}
			drawText(dst, face, src, s, x, top+face.Metrics().Ascent.Ceil())
		},
	}
}

func (r *Rasterizer) row(face font.Face, cells []string) block {
	contentW := r.width - 2*margin
	return block{
		height: lineHeight(face),
		draw: func(dst *image.RGBA, top int) {
			baseline := top + face.Metrics().Ascent.Ceil()
			for i, c := range cells {
				if i >= len(columnStops) {
					break
				}
				x := margin + int(columnStops[i]*float64(contentW))
				next := contentW
				if i+1 < len(columnStops) {
					next = int(columnStops[i+1] * float64(contentW))
				}
				avail := margin + next - x - lineGap
				drawText(dst, face, ink, fit(face, glyphFallback.Replace(c), avail), x, baseline)
			}
		},
	}
}

func (r *Rasterizer) hr() block {
	return block{
		height: 2*lineGap + ruleHeight,
		draw: func(dst *image.RGBA, top int) {
			y := top + lineGap
			draw.Draw(dst, image.Rect(margin, y, r.width-margin, y+ruleHeight), rule, image.Point{}, draw.Src)
		},
	}
}

func drawText(dst *image.RGBA, face font.Face, src image.Image, s string, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// fit shortens s with an ellipsis until it is at most max pixels wide.
func fit(face font.Face, s string, max int) string {
	if max <= 0 || font.MeasureString(face, s).Ceil() <= max {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		t := string(rs) + "…"
		if font.MeasureString(face, t).Ceil() <= max {
			return t
		}
	}
	return ""
}
