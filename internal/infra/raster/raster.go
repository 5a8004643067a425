package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"restobill/go_backend/internal/domain/bill"
)

const (
	DefaultWidth = 800
	minWidth     = 320

	// MaxHeight keeps the page within the 14400pt limit of common PDF
	// viewers (one pixel per point).
	MaxHeight = 14400

	margin     = 32
	lineGap    = 6
	titleSize  = 24
	bodySize   = 14
	smallSize  = 12
	ruleHeight = 1
)

var ErrTooTall = errors.New("bill too long for a single page")

var (
	ink    = image.NewUniform(color.RGBA{0x21, 0x25, 0x29, 0xff})
	accent = image.NewUniform(color.RGBA{0x00, 0x7b, 0xff, 0xff})
	rule   = image.NewUniform(color.RGBA{0xcc, 0xcc, 0xcc, 0xff})

	// the Go fonts carry no rupee glyph
	glyphFallback = strings.NewReplacer(bill.Currency, "Rs.")
)

// Rasterizer draws bill views with the Go fonts. Parsed fonts are shared;
// faces are created per call because a face is not safe for concurrent use.
type Rasterizer struct {
	width   int
	regular *opentype.Font
	bold    *opentype.Font
}

func New(width int) (*Rasterizer, error) {
	if width < minWidth {
		width = DefaultWidth
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Rasterizer{width: width, regular: regular, bold: bold}, nil
}

type faces struct {
	title, body, bold, small font.Face
}

func (f faces) close() {
	for _, fc := range []font.Face{f.title, f.body, f.bold, f.small} {
		if fc != nil {
			fc.Close()
		}
	}
}

func (r *Rasterizer) faces() (faces, error) {
	var fs faces
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&fs.title, r.bold, titleSize},
		{&fs.body, r.regular, bodySize},
		{&fs.bold, r.bold, bodySize},
		{&fs.small, r.regular, smallSize},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.close()
			return faces{}, err
		}
		*s.dst = face
	}
	return fs, nil
}

func (r *Rasterizer) Rasterize(ctx context.Context, v bill.View) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs, err := r.faces()
	if err != nil {
		return nil, fmt.Errorf("raster faces: %w", err)
	}
	defer fs.close()

	blocks := r.layout(v, fs)
	height := 2 * margin
	for _, b := range blocks {
		height += b.height
	}
	if height > MaxHeight {
		return nil, fmt.Errorf("%w: %d rows, %dpx", ErrTooTall, len(v.Rows), height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	top := margin
	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.draw(dst, top)
		top += b.height
	}
	return dst, nil
}
