// ABOUTME: Ask command runs an interactive refinement session in the terminal
// ABOUTME: Drives the inquirer directly without an HTTP server
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Refine a request interactively",
		Long: `Refine a request interactively.

Starts the interview with your message (or prompts for one), asks the
role question and three clarifiers, and prints the final refined query.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			inquirer, err := buildInquirer(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			message := strings.Join(args, " ")
			if message == "" {
				fmt.Fprint(out, "What do you need help with? ")
				if !in.Scan() {
					return in.Err()
				}
				message = in.Text()
			}

			res, err := inquirer.Start(cmd.Context(), message)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", res.Question)

			for {
				fmt.Fprint(out, "> ")
				if !in.Scan() {
					return in.Err()
				}

				res, err = inquirer.Continue(cmd.Context(), res.ConversationID, in.Text())
				if err != nil {
					return err
				}
				if res.Final {
					fmt.Fprintf(out, "\n%s\n", res.RefinedQuery)
					return nil
				}
				fmt.Fprintf(out, "\n%s\n", res.Question)
			}
		},
		Example: `  # Start the interview from a message
  inquiry ask "help me with my API"

  # Start and get prompted for the message
  inquiry ask`,
	}

	return cmd
}
