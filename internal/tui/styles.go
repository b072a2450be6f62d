// Package tui provides the terminal chat screen: the chat state, its key
// handling, the renderer and the event loop that ties them together.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/render"
)

// Styles holds the cell styles used when drawing
type Styles struct {
	User      tcell.Style // "You: " label
	Assistant tcell.Style // "Assistant: " label
	Text      tcell.Style // message bodies and pending input, always unstyled
}

// StylesFromTheme builds cell styles from a TUI theme
func StylesFromTheme(theme render.TUITheme) Styles {
	return Styles{
		User:      tcell.StyleDefault.Foreground(render.CellColor(theme.UserLabel)),
		Assistant: tcell.StyleDefault.Foreground(render.CellColor(theme.AssistantLabel)),
		Text:      tcell.StyleDefault,
	}
}

// DefaultStyles returns the styles of the default theme
func DefaultStyles() Styles {
	return StylesFromTheme(render.DefaultTUITheme)
}

// labelStyle picks the label style for a message origin
func (s Styles) labelStyle(origin models.Origin) tcell.Style {
	if origin == models.OriginAssistant {
		return s.Assistant
	}
	return s.User
}
