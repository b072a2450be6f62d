package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/render"
)

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(render.DefaultTUITheme.Error)
	dimStyle := lipgloss.NewStyle().Foreground(render.DefaultTUITheme.TextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if op := apperrors.GetOp(err); op != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Operation: %s", op)))
	}

	switch {
	case errors.Is(err, apperrors.ErrNotTerminal):
		sb.WriteString(dimStyle.Render("\n  Hint: termchat needs an interactive terminal; do not redirect its output"))
	case apperrors.IsTerminalError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: the terminal could not be switched to raw mode; run 'reset' if your shell looks wrong"))
	case apperrors.IsRenderError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: the terminal stopped accepting output"))
	case errors.Is(err, apperrors.ErrInputClosed):
		sb.WriteString(dimStyle.Render("\n  Hint: the terminal input closed before Ctrl+C was pressed"))
	}

	return sb.String()
}
