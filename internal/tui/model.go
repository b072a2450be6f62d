package tui

import (
	"unicode/utf8"

	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/terminal"
)

// Model represents the chat state: the committed history, the line being
// typed and whether the user asked to quit.
type Model struct {
	messages []models.Message
	pending  []byte
	quit     bool
}

// NewModel creates an empty chat state
func NewModel() *Model {
	return &Model{}
}

// History returns a copy of the committed messages in display order
func (m *Model) History() []models.Message {
	out := make([]models.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns the number of committed messages
func (m *Model) Len() int {
	return len(m.messages)
}

// Pending returns the uncommitted input
func (m *Model) Pending() string {
	return string(m.pending)
}

// QuitRequested reports whether Ctrl+C has been pressed. Once true it
// stays true.
func (m *Model) QuitRequested() bool {
	return m.quit
}

// HandleKey applies one key press. Rules are checked in order and the first
// match wins:
//
//	Ctrl+C                      request quit
//	character, no mod or Shift  append to pending input
//	Enter                       commit non-empty input as a user message, clear input
//	Backspace                   drop the last character of pending input
//	anything else               ignored
func (m *Model) HandleKey(ev terminal.KeyEvent) {
	switch {
	case isCtrlC(ev):
		m.quit = true

	case ev.Key == terminal.KeyRune && (ev.Mod == terminal.ModNone || ev.Mod == terminal.ModShift):
		m.pending = utf8.AppendRune(m.pending, ev.Rune)

	case ev.Key == terminal.KeyEnter:
		if len(m.pending) > 0 {
			m.messages = append(m.messages, models.NewUserMessage(string(m.pending)))
		}
		m.pending = m.pending[:0]

	case ev.Key == terminal.KeyBackspace:
		if len(m.pending) > 0 {
			_, size := utf8.DecodeLastRune(m.pending)
			m.pending = m.pending[:len(m.pending)-size]
		}
	}
}

func isCtrlC(ev terminal.KeyEvent) bool {
	return ev.Key == terminal.KeyRune &&
		(ev.Rune == 'c' || ev.Rune == 'C') &&
		ev.Mod == terminal.ModCtrl
}
