// Package terminal brackets the chat's use of the terminal device: raw
// input, the alternate screen buffer, the input event stream and cell
// drawing. Only one Session may be active per process.
package terminal

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	apperrors "github.com/diogo/termchat/internal/errors"
)

// Session owns the terminal between Start and Stop
type Session struct {
	screen   tcell.Screen
	owned    bool // screen created by Start, discarded by Stop
	sizeFunc func() (int, int, error)
	active   bool
}

// Option configures a Session
type Option func(*Session)

// WithScreen uses the given screen instead of opening the controlling tty.
// Tests pass a tcell simulation screen.
func WithScreen(screen tcell.Screen) Option {
	return func(s *Session) {
		s.screen = screen
	}
}

// WithSizeFunc replaces the terminal size query
func WithSizeFunc(fn func() (cols, rows int, err error)) Option {
	return func(s *Session) {
		s.sizeFunc = fn
	}
}

// NewSession creates an inactive session
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start enables raw input mode and switches to the alternate screen.
// Failure is fatal for the caller: nothing can be drawn without it.
func (s *Session) Start() error {
	if s.active {
		return apperrors.NewTerminalError("start", apperrors.ErrSessionActive)
	}

	if s.screen == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return apperrors.NewTerminalError("start", apperrors.ErrNotTerminal)
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return apperrors.NewTerminalError("start", err)
		}
		s.screen = screen
		s.owned = true
	}

	if err := s.screen.Init(); err != nil {
		if s.owned {
			s.screen = nil
			s.owned = false
		}
		return apperrors.NewTerminalError("start", err)
	}

	s.screen.Clear()
	s.active = true
	return nil
}

// Stop leaves the alternate screen and restores line-buffered input.
// Calling Stop on an inactive session does nothing. tcell reports no
// teardown failure, so the returned error is always nil.
func (s *Session) Stop() error {
	if !s.active {
		return nil
	}

	s.screen.Fini()
	s.active = false
	if s.owned {
		s.screen = nil
		s.owned = false
	}
	return nil
}

// Active reports whether the session is between Start and Stop
func (s *Session) Active() bool {
	return s.active
}

// Run starts the session, calls fn and stops the session on every exit
// path, including panics.
func (s *Session) Run(fn func() error) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	return fn()
}

// Size returns the terminal dimensions in cells
func (s *Session) Size() (cols, rows int, err error) {
	if s.sizeFunc != nil {
		return s.sizeFunc()
	}
	if s.screen != nil && !s.owned {
		cols, rows = s.screen.Size()
		return cols, rows, nil
	}
	return term.GetSize(int(os.Stdout.Fd()))
}

// PollEvent blocks until the next input event. It returns false once the
// event stream has ended.
func (s *Session) PollEvent() (Event, bool) {
	if !s.active {
		return nil, false
	}
	ev := translateEvent(s.screen.PollEvent())
	if ev == nil {
		return nil, false
	}
	return ev, true
}

// Print draws text starting at (x, y) and returns the column after the last
// cell written. Text is neither wrapped nor truncated; cells beyond the right
// edge are dropped by the screen.
func (s *Session) Print(x, y int, text string, style tcell.Style) (int, error) {
	if !s.active {
		return x, apperrors.NewRenderError("print", y, apperrors.ErrSessionInactive)
	}

	col := x
	baseX := -1
	var base rune
	var combining []rune
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			// Zero-width runes attach to the preceding cell
			if baseX >= 0 {
				combining = append(combining, r)
				s.screen.SetContent(baseX, y, base, combining, style)
			}
			continue
		}
		baseX, base, combining = col, r, nil
		s.screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col, nil
}

// ClearLine blanks row y across the full screen width
func (s *Session) ClearLine(y int) error {
	if !s.active {
		return apperrors.NewRenderError("clear", y, apperrors.ErrSessionInactive)
	}

	width, _ := s.screen.Size()
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	return nil
}

// ShowCursor places the terminal cursor at (x, y)
func (s *Session) ShowCursor(x, y int) error {
	if !s.active {
		return apperrors.NewRenderError("cursor", y, apperrors.ErrSessionInactive)
	}
	s.screen.ShowCursor(x, y)
	return nil
}

// Flush makes all pending drawing visible
func (s *Session) Flush() error {
	if !s.active {
		return apperrors.NewRenderError("flush", -1, apperrors.ErrSessionInactive)
	}
	s.screen.Show()
	return nil
}
