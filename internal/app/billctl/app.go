package billctl

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"restobill/go_backend/internal/app/config"
	"restobill/go_backend/internal/domain/bill"
	"restobill/go_backend/internal/domain/bill/export"
	pdfexport "restobill/go_backend/internal/domain/bill/export/gofpdf"
	xlsxexport "restobill/go_backend/internal/domain/bill/export/xlsx"
	"restobill/go_backend/internal/infra/raster"
)

var defaultRate = decimal.NewFromInt(18)

func NewApp() *cli.App {
	orderFlags := []cli.Flag{
		&cli.StringFlag{Name: "order", Aliases: []string{"o"}, Usage: "order `FILE` (yaml)", Required: true},
		&cli.StringFlag{Name: "tax", Usage: "GST rate in percent, overrides the order file"},
		&cli.StringFlag{Name: "tz", Value: "Asia/Kolkata", Usage: "timezone for the bill date"},
	}
	return &cli.App{
		Name:  "billctl",
		Usage: "compute and export restaurant bills from order files",
		Commands: []*cli.Command{
			{
				Name:   "totals",
				Usage:  "print subtotal, GST and total",
				Flags:  orderFlags,
				Action: totals,
			},
			{
				Name:  "export",
				Usage: "write the bill as xlsx or pdf",
				Flags: append(orderFlags,
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "xlsx", Usage: "xlsx or pdf"},
					&cli.StringFlag{Name: "out", Value: ".", Usage: "output `DIR`"},
					&cli.IntFlag{Name: "width", Value: raster.DefaultWidth, Usage: "pdf image width in pixels"},
				),
				Action: exportBill,
			},
		},
	}
}

func load(c *cli.Context) (bill.Snapshot, error) {
	o, err := LoadOrder(c.String("order"))
	if err != nil {
		return bill.Snapshot{}, err
	}
	b, err := o.Build(config.Restaurant(), c.String("tax"), defaultRate)
	if err != nil {
		return bill.Snapshot{}, err
	}
	loc, err := time.LoadLocation(c.String("tz"))
	if err != nil {
		return bill.Snapshot{}, fmt.Errorf("timezone: %w", err)
	}
	return b.Snapshot(time.Now().In(loc)), nil
}

func totals(c *cli.Context) error {
	s, err := load(c)
	if err != nil {
		return err
	}
	v := bill.Project(s)
	fmt.Fprintf(c.App.Writer, "Items: %d\n", len(s.Items))
	fmt.Fprintf(c.App.Writer, "Subtotal: %s\n", v.Subtotal)
	fmt.Fprintf(c.App.Writer, "%s: %s\n", v.TaxLabel, v.TaxAmount)
	fmt.Fprintf(c.App.Writer, "Total Amount: %s\n", v.GrandTotal)
	return nil
}

func exportBill(c *cli.Context) error {
	s, err := load(c)
	if err != nil {
		return err
	}

	var exp export.Exporter
	switch c.String("format") {
	case "xlsx":
		exp = xlsxexport.New()
	case "pdf":
		r, err := raster.New(c.Int("width"))
		if err != nil {
			return err
		}
		exp = pdfexport.New(r)
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}

	doc, err := exp.Export(c.Context, s)
	if err != nil {
		return err
	}
	path := filepath.Join(c.String("out"), doc.Filename)
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}
