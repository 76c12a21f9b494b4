package main

import (
	"log"

	"github.com/stpnv0/CampusHaven/internal/app"
	"github.com/stpnv0/CampusHaven/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("campushaven init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("campushaven run: %v", err)
	}
}
