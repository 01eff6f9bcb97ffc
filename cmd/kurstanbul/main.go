package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hasansisik/kurstanbul-kos-server/internal/app"
	"github.com/hasansisik/kurstanbul-kos-server/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
