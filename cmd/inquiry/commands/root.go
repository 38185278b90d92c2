// ABOUTME: Root command for the inquiry CLI with global flags
// ABOUTME: Registers serve, mcp, ask, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiry",
		Short: "Conversational query refinement service",
		Long: `Inquiry refines a vague request into a well-formed query.

It runs a short interview driven by a language model: one question
about your role, then three clarifying questions, then a single
synthesized query you can paste anywhere.

Run it as an HTTP service (serve), an MCP server for LLM agents (mcp),
or interactively in the terminal (ask).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
