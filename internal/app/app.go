package app

import (
	"log"
	"net/http"
	"time"

	"restobill/go_backend/internal/app/config"
	apphttp "restobill/go_backend/internal/app/http"
	"restobill/go_backend/internal/app/http/handlers"
	"restobill/go_backend/internal/domain/bill"
	pdfexport "restobill/go_backend/internal/domain/bill/export/gofpdf"
	xlsxexport "restobill/go_backend/internal/domain/bill/export/xlsx"
	"restobill/go_backend/internal/infra/raster"
	"restobill/go_backend/internal/infra/session"
)

func Run() {
	cfg := config.MustLoad()
	profile := config.Restaurant()

	store := session.New(cfg.SessionTTL, func() *bill.Bill {
		return bill.New(profile, cfg.DefaultGSTRate)
	})

	exp := handlers.Exporters{XLSX: xlsxexport.New()}
	if r, err := raster.New(cfg.RasterWidth); err != nil {
		log.Printf("raster: %v, pdf export disabled", err)
		exp.PDF = pdfexport.New(nil)
	} else {
		exp.PDF = pdfexport.New(r)
	}

	router := apphttp.NewRouter(cfg, store, exp)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s (%s)", cfg.HTTPAddr, profile.Name)
	log.Fatal(srv.ListenAndServe())
}
