// Package commands provides CLI commands for termchat.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd creates the termchat command. Without arguments it starts the
// chat screen.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "termchat",
		Short: "Minimal terminal chat",
		Long: `termchat is a minimal chat screen for the terminal. Type a line and
press Enter to add it to the conversation; Backspace edits the line and
Ctrl+C quits.

Examples:
  termchat                    Start the chat
  termchat --theme nord       Start with another label color theme
  termchat config             Show the configuration
  termchat config init        Write the default configuration file`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "termchat %s (built %s)\n", Version, BuildTime)
				return nil
			}

			theme, _ := cmd.Flags().GetString("theme")
			return runChat(deps, theme, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringP("theme", "t", "", "Label color theme (overrides config)")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewConfigCmd(deps))

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd(NewDependencies()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "termchat"))
		os.Exit(1)
	}
}
