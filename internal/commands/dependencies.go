package commands

import (
	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/terminal"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewSession opens the terminal the chat runs on.
	NewSession func() *terminal.Session

	// LoadConfig reads the user configuration.
	LoadConfig func() (config.Config, error)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewSession: func() *terminal.Session { return terminal.NewSession() },
		LoadConfig: config.LoadConfig,
	}
}

func (d *Dependencies) withDefaults() *Dependencies {
	defaults := NewDependencies()
	if d == nil {
		return defaults
	}
	out := *d
	if out.NewSession == nil {
		out.NewSession = defaults.NewSession
	}
	if out.LoadConfig == nil {
		out.LoadConfig = defaults.LoadConfig
	}
	return &out
}
