package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string
	DefaultGSTRate  decimal.Decimal
	Location        *time.Location
	SessionTTL      time.Duration
	RasterWidth     int
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env: %v", err)
	}
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		DefaultGSTRate:  mustDecimal("DEFAULT_GST_RATE", "18"),
		Location:        mustLocation("BILL_TIMEZONE", "Asia/Kolkata"),
		SessionTTL:      mustDuration("SESSION_TTL", "12h"),
		RasterWidth:     mustInt("RASTER_WIDTH", "800"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustDecimal(k, def string) decimal.Decimal {
	d, err := decimal.NewFromString(env(k, def))
	if err != nil {
		log.Fatalf("invalid env %s: %v", k, err)
	}
	return d
}

func mustDuration(k, def string) time.Duration {
	d, err := time.ParseDuration(env(k, def))
	if err != nil {
		log.Fatalf("invalid env %s: %v", k, err)
	}
	return d
}

func mustInt(k, def string) int {
	n, err := strconv.Atoi(env(k, def))
	if err != nil {
		log.Fatalf("invalid env %s: %v", k, err)
	}
	return n
}

func mustLocation(k, def string) *time.Location {
	loc, err := time.LoadLocation(env(k, def))
	if err != nil {
		log.Printf("config: %s: %v, using UTC", k, err)
		return time.UTC
	}
	return loc
}
