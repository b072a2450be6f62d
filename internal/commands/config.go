package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/render"
)

// NewConfigCmd creates a new config command
func NewConfigCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: `Show the configuration file location, the effective settings and the
available label color themes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			logPath, err := config.GetLogPath(cfg)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			keyStyle := lipgloss.NewStyle().Foreground(render.DefaultTUITheme.UserLabel).Bold(true)
			dimStyle := lipgloss.NewStyle().Foreground(render.DefaultTUITheme.TextDim)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("Config file:"), path)
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("Log file:"), logPath)
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render("Themes:"), strings.Join(render.TUIThemeNames(), ", "))
			fmt.Fprintln(out, dimStyle.Render(string(data)))
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
