// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to run the refinement interview via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sable/inquiry/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the inquiry service as an MCP (Model Context Protocol) server,
exposing start_inquiry and continue_inquiry tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP host)
  inquiry mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "inquiry": {
  #       "command": "inquiry",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	inquirer, err := buildInquirer(ctx, cfg)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Inquiry System",
		"0.1.0",
	)
	mcp.RegisterTools(server, inquirer)

	if !quiet {
		log.Println("Inquiry MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down...")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
