package main

import (
	"context"
	"log"

	"github.com/ytget/deeptube/internal/app"
	"github.com/ytget/deeptube/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		log.Fatalf("DeepTube: %v", err)
	}
}
