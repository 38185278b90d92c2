// ABOUTME: Main entry point for the inquiry HTTP server
// ABOUTME: Initializes config, store, OpenAI client, and the gin router
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/sable/inquiry/internal/config"
	"github.com/sable/inquiry/internal/core"
	"github.com/sable/inquiry/internal/llm"
	"github.com/sable/inquiry/internal/server"
	"github.com/sable/inquiry/internal/store"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:      cfg.OpenAIKey,
		ChatModel:   cfg.ChatModel,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
		MaxRetries:  cfg.MaxRetries,
		RetryDelay:  cfg.RetryDelay,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	conversations := store.NewConversationStore()
	conversations.StartJanitor(context.Background(), cfg.ConversationTTL, cfg.SweepInterval)

	inquirer := core.NewInquirer(conversations, client)
	srv := server.New(inquirer, cfg.CORSOrigins)

	log.Printf("Inquiry server listening on %s", cfg.Addr)
	if err := srv.Run(cfg.Addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
