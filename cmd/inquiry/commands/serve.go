// ABOUTME: Serve command runs the inquiry HTTP server
// ABOUTME: Exposes the blocking and SSE streaming endpoints
package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/sable/inquiry/internal/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inquiry HTTP server",
		Long: `Run the inquiry HTTP server.

Endpoints:
  GET  /                         service banner
  POST /inquire/start            start a conversation (blocking)
  POST /inquire/start/stream     start a conversation (SSE)
  POST /inquire/continue         answer the current question (blocking)
  POST /inquire/continue/stream  answer the current question (SSE)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			inquirer, err := buildInquirer(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			srv := server.New(inquirer, cfg.CORSOrigins)
			if !quiet {
				log.Printf("Inquiry server listening on %s", cfg.Addr)
			}
			return srv.Run(cfg.Addr)
		},
		Example: `  # Serve on the default address (:8000)
  inquiry serve

  # Serve on a custom port
  inquiry serve --addr :9000`,
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides INQUIRY_ADDR)")

	return cmd
}
