package main

import (
	"log"

	"github.com/MrSnakeDoc/foyer/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ foyer failed to start: %v", err)
	}
}
