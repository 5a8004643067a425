package main

import (
	"log"
	"os"
	_ "time/tzdata"

	"restobill/go_backend/internal/app/billctl"
)

func main() {
	if err := billctl.NewApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
