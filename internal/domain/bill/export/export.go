package export

import (
	"context"
	"errors"
	"image"

	"restobill/go_backend/internal/domain/bill"
)

var ErrRenderUnavailable = errors.New("render unavailable")

type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Exporter interface {
	Export(ctx context.Context, s bill.Snapshot) (Document, error)
}

// Rasterizer draws the printable view of a bill into an image.
type Rasterizer interface {
	Rasterize(ctx context.Context, v bill.View) (image.Image, error)
}
