package main

import (
	"log"

	"github.com/MrSnakeDoc/cloudmark/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ cloudmark failed to start: %v", err)
	}
}
