package commands

import (
	"fmt"
	"io"

	"github.com/diogo/termchat/internal/logging"
	"github.com/diogo/termchat/internal/render"
	"github.com/diogo/termchat/internal/tui"
)

// runChat brackets the chat loop with the terminal session. Warnings are
// written to stderr before the session starts; once it is active only the
// log file is written.
func runChat(deps *Dependencies, themeFlag string, stderr io.Writer) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v, using defaults\n", err)
	}

	logger, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}

	theme := resolveTheme(cfg.TUITheme, themeFlag, stderr)

	session := deps.NewSession()
	err = session.Run(func() error {
		app := tui.NewApp(session,
			tui.WithStyles(tui.StylesFromTheme(theme)),
			tui.WithLogger(logger),
		)
		return app.Run()
	})
	if err != nil {
		logger.Error("chat terminated", "error", err)
		return err
	}
	return nil
}

// resolveTheme picks the flag theme over the configured one and falls back
// to the default theme for unknown names
func resolveTheme(configured, flag string, stderr io.Writer) render.TUITheme {
	name := configured
	if flag != "" {
		name = flag
	}
	if name == "" {
		return render.DefaultTUITheme
	}

	theme, ok := render.GetTUIThemeByName(name)
	if !ok {
		fmt.Fprintf(stderr, "Warning: unknown theme '%s', using '%s'\n", name, render.DefaultTUITheme.Name)
		return render.DefaultTUITheme
	}
	return theme
}
