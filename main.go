package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"comp-engine/internal/config"
	"comp-engine/internal/handler"
	"comp-engine/internal/locale"
	"comp-engine/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	h := handler.New(locale.NewRegistry(cfg.RatesURL), scenario.NewStore())

	log.Printf("Compensation engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
