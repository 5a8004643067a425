package main

import (
	_ "time/tzdata"

	"restobill/go_backend/internal/app"
)

func main() {
	app.Run()
}
