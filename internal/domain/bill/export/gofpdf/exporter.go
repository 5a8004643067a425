package gofpdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"

	"github.com/jung-kurt/gofpdf"

	"restobill/go_backend/internal/domain/bill"
	"restobill/go_backend/internal/domain/bill/export"
)

const (
	ContentType = "application/pdf"
	imageName   = "bill"

	// maxPageSide is the largest page side, in points, common viewers open.
	maxPageSide = 14400
)

// Exporter produces a single-page PDF holding a picture of the printable
// bill. The text in the result is not selectable.
type Exporter struct {
	raster export.Rasterizer
}

func New(r export.Rasterizer) *Exporter { return &Exporter{raster: r} }

func Filename(s bill.Snapshot) string {
	return "Bill_" + s.IssuedAt.Format("02-Jan-2006") + ".pdf"
}

func (e *Exporter) Export(ctx context.Context, s bill.Snapshot) (export.Document, error) {
	if e.raster == nil {
		return export.Document{}, export.ErrRenderUnavailable
	}
	img, err := e.raster.Rasterize(ctx, bill.Project(s))
	if err != nil {
		log.Printf("bill pdf: rasterize failed: %v", err)
		return export.Document{}, fmt.Errorf("%w: %v", export.ErrRenderUnavailable, err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return export.Document{}, fmt.Errorf("%w: empty image", export.ErrRenderUnavailable)
	}
	if bounds.Dx() > maxPageSide || bounds.Dy() > maxPageSide {
		return export.Document{}, fmt.Errorf("%w: image %dx%d exceeds page limit", export.ErrRenderUnavailable, bounds.Dx(), bounds.Dy())
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return export.Document{}, fmt.Errorf("encode png: %w", err)
	}

	// one image pixel per point; "P" keeps Wd/Ht as given
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetTitle(s.Profile.Name+" - "+s.IssuedAt.Format(bill.DateLayout), true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opt, &pngBuf)
	pdf.ImageOptions(imageName, 0, 0, w, h, false, opt, 0, "")
	if err := pdf.Error(); err != nil {
		return export.Document{}, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("bill pdf: output failed: %v", err)
		return export.Document{}, err
	}
	return export.Document{
		Filename:    Filename(s),
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}, nil
}
