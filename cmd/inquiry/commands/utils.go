// ABOUTME: Shared wiring helpers for CLI commands
// ABOUTME: Builds the inquirer stack from environment configuration
package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/sable/inquiry/internal/config"
	"github.com/sable/inquiry/internal/core"
	"github.com/sable/inquiry/internal/llm"
	"github.com/sable/inquiry/internal/store"
)

// loadConfig loads .env (if present) and the environment configuration
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildInquirer assembles the store, OpenAI client, and turn controller
func buildInquirer(ctx context.Context, cfg *config.Config) (*core.Inquirer, error) {
	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:      cfg.OpenAIKey,
		ChatModel:   cfg.ChatModel,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
		MaxRetries:  cfg.MaxRetries,
		RetryDelay:  cfg.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	conversations := store.NewConversationStore()
	conversations.StartJanitor(ctx, cfg.ConversationTTL, cfg.SweepInterval)

	return core.NewInquirer(conversations, client), nil
}
