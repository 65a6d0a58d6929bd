package main

import (
	"context"
	"log"

	"caption-api/api/internal/caption/gemini"
	"caption-api/api/internal/config"
	"caption-api/api/internal/handle"
	"caption-api/api/internal/httpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	engine, err := gemini.New(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("failed to initialize Gemini model %q: %v", cfg.GeminiModel, err)
	}
	defer engine.Close()

	h := handle.New(engine)

	mux := httpserver.New()
	mux.HandleFunc("/", h.Root)
	mux.HandleFunc("/caption-image/", h.Caption)

	log.Printf("caption-api using model %s", engine.GetModel())
	log.Fatal(httpserver.Start(":"+cfg.Port, mux))
}
