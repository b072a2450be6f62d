package tui

import (
	apperrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

// Redraw repaints every message and the input line, then flushes. It is a
// full repaint: the same state always produces the same screen.
func (a *App) Redraw() error {
	if err := a.drawHistory(); err != nil {
		return err
	}
	if err := a.drawInput(); err != nil {
		return err
	}
	return a.flush()
}

// drawHistory writes message i on row i. Rows are not cleared first: the
// history only grows, so a row never holds anything but its own message.
func (a *App) drawHistory() error {
	for row, msg := range a.model.messages {
		if err := a.drawMessage(row, msg); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) drawMessage(row int, msg models.Message) error {
	x, err := a.term.Print(0, row, msg.Origin.Label(), a.styles.labelStyle(msg.Origin))
	if err != nil {
		return renderError("print", row, err)
	}
	if _, err := a.term.Print(x, row, msg.Content, a.styles.Text); err != nil {
		return renderError("print", row, err)
	}
	return nil
}

// drawInput clears the input row and writes the label, the pending text and
// the cursor right after it.
func (a *App) drawInput() error {
	row := a.inputRow
	if err := a.term.ClearLine(row); err != nil {
		return renderError("clear", row, err)
	}
	x, err := a.term.Print(0, row, models.OriginUser.Label(), a.styles.User)
	if err != nil {
		return renderError("print", row, err)
	}
	x, err = a.term.Print(x, row, a.model.Pending(), a.styles.Text)
	if err != nil {
		return renderError("print", row, err)
	}
	if err := a.term.ShowCursor(x, row); err != nil {
		return renderError("cursor", row, err)
	}
	return nil
}

func (a *App) flush() error {
	if err := a.term.Flush(); err != nil {
		return renderError("flush", -1, err)
	}
	return nil
}

// renderError keeps errors that already carry render context as they are
func renderError(op string, row int, err error) error {
	if apperrors.IsRenderError(err) {
		return err
	}
	return apperrors.NewRenderError(op, row, err)
}
