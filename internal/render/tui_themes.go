// Package render provides the color themes for the chat labels and the
// conversion of theme colors to terminal cell colors.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// TUITheme defines the colors used by the chat screen and the CLI output.
// Only the labels are colored; message text keeps the terminal's default.
type TUITheme struct {
	Name        string
	Description string

	UserLabel      lipgloss.Color
	AssistantLabel lipgloss.Color

	Error   lipgloss.Color
	TextDim lipgloss.Color
}

// Built-in TUI themes
var (
	// ClassicTheme uses the plain ANSI palette: blue for the user, green for
	// the assistant, unstyled text.
	ClassicTheme = TUITheme{
		Name:        "classic",
		Description: "Classic - ANSI blue and green labels",

		UserLabel:      lipgloss.Color("12"),
		AssistantLabel: lipgloss.Color("10"),

		Error:   lipgloss.Color("9"),
		TextDim: lipgloss.Color("8"),
	}

	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",

		UserLabel:      lipgloss.Color("#7aa2f7"),
		AssistantLabel: lipgloss.Color("#9ece6a"),

		Error:   lipgloss.Color("#f7768e"),
		TextDim: lipgloss.Color("#565f89"),
	}

	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",

		UserLabel:      lipgloss.Color("#89b4fa"), // Blue
		AssistantLabel: lipgloss.Color("#a6e3a1"), // Green

		Error:   lipgloss.Color("#f38ba8"),
		TextDim: lipgloss.Color("#6c7086"),
	}

	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",

		UserLabel:      lipgloss.Color("#88c0d0"), // Frost
		AssistantLabel: lipgloss.Color("#a3be8c"), // Aurora green

		Error:   lipgloss.Color("#bf616a"),
		TextDim: lipgloss.Color("#7b88a1"),
	}

	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",

		UserLabel:      lipgloss.Color("#8be9fd"), // Cyan
		AssistantLabel: lipgloss.Color("#50fa7b"), // Green

		Error:   lipgloss.Color("#ff5555"),
		TextDim: lipgloss.Color("#6272a4"),
	}
)

// DefaultTUITheme is used when no theme, or an unknown one, is configured
var DefaultTUITheme = ClassicTheme

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, theme := range AvailableTUIThemes() {
		if theme.Name == strings.ToLower(strings.TrimSpace(name)) {
			return theme, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		ClassicTheme,
		TokyoNightTheme,
		CatppuccinMochaTheme,
		NordTheme,
		DraculaTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// CellColor converts a lipgloss color ("#rrggbb" or an ANSI palette index)
// into a tcell color. Empty or unparsable values map to the terminal default.
func CellColor(c lipgloss.Color) tcell.Color {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return tcell.ColorDefault
	}
	if strings.HasPrefix(s, "#") {
		return tcell.GetColor(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}
