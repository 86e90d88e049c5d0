// Package main is the entry point for Rouge.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rouge/internal/game"
	"github.com/samdwyer/rouge/internal/telemetry"
	"github.com/samdwyer/rouge/internal/ui"
	"github.com/samdwyer/rouge/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	export := setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.WithOTLP(export))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := game.DefaultConfig()

	display, err := ui.NewTerminal(cfg.Window())
	if err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	g, err := game.New(ctx, cfg, display, world.EmptyGenerator{})
	if err != nil {
		display.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv maps our HONEYCOMB_ROUGE_* variables onto the standard OTEL ones
// and reports whether spans have somewhere to go: an explicit OTLP endpoint,
// or a Honeycomb API key.
func setupOTelEnv() bool {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return true
	}

	apiKey := os.Getenv("HONEYCOMB_ROUGE_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_ROUGE_DATASET")
	if dataset == "" {
		dataset = "rouge"
	}

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here from the raw key.
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
