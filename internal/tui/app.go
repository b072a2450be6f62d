package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	apperrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/logging"
	"github.com/diogo/termchat/internal/terminal"
)

// Terminal is the device the chat runs on. *terminal.Session implements it.
type Terminal interface {
	Size() (cols, rows int, err error)
	// PollEvent blocks until the next input event; false means the input
	// stream has ended.
	PollEvent() (terminal.Event, bool)
	Print(x, y int, text string, style tcell.Style) (int, error)
	ClearLine(y int) error
	ShowCursor(x, y int) error
	Flush() error
}

// App drives the chat: it waits for input, applies it to the model and
// repaints the screen, one event at a time.
type App struct {
	term     Terminal
	model    *Model
	styles   Styles
	logger   *slog.Logger
	inputRow int
}

// Option configures an App
type Option func(*App)

// WithStyles sets the label and text styles
func WithStyles(styles Styles) Option {
	return func(a *App) {
		a.styles = styles
	}
}

// WithLogger sets the logger used for warnings and diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewApp creates a chat bound to a terminal
func NewApp(term Terminal, opts ...Option) *App {
	a := &App{
		term:   term,
		model:  NewModel(),
		styles: DefaultStyles(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model returns the chat state
func (a *App) Model() *Model {
	return a.model
}

// InputRow returns the row holding the input line. Valid after Run has
// measured the terminal.
func (a *App) InputRow() int {
	return a.inputRow
}

// Run measures the terminal once, draws the empty input line and then
// processes events until Ctrl+C. The caller owns the terminal session and
// must stop it however Run returns.
func (a *App) Run() error {
	cols, rows, err := a.term.Size()
	if err != nil {
		a.logger.Warn("terminal size query failed, using zero size", "error", err)
		cols, rows = 0, 0
	}
	a.inputRow = inputRowFor(rows)
	a.logger.Debug("chat started", "cols", cols, "rows", rows, "input_row", a.inputRow)

	if err := a.drawInput(); err != nil {
		return err
	}
	if err := a.flush(); err != nil {
		return err
	}

	for !a.model.QuitRequested() {
		ev, ok := a.term.PollEvent()
		if !ok {
			return apperrors.ErrInputClosed
		}

		key, isKey := ev.(terminal.KeyEvent)
		if !isKey {
			continue
		}
		a.model.HandleKey(key)
		if a.model.QuitRequested() {
			break
		}

		if err := a.Redraw(); err != nil {
			return err
		}
	}

	a.logger.Info("chat ended", "messages", a.model.Len())
	return nil
}

// inputRowFor places the input line one row above the bottom edge
func inputRowFor(rows int) int {
	if rows < 2 {
		return 0
	}
	return rows - 2
}
