package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Key represents a decoded input key
type Key uint16

const (
	KeyUnknown Key = iota
	KeyRune        // Printable character (check KeyEvent.Rune)
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyEscape
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyFunction // F1..F64
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// Has reports whether all bits of m2 are set in m
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Event is anything delivered by the terminal's input stream
type Event interface {
	isEvent()
}

// KeyEvent is a key press. Ctrl+letter combinations arrive as KeyRune with
// the lowercase letter and ModCtrl set.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// ResizeEvent reports new terminal dimensions
type ResizeEvent struct {
	Cols, Rows int
}

// MouseEvent reports a mouse action at a cell
type MouseEvent struct {
	X, Y int
}

// FocusEvent reports the terminal gaining or losing focus
type FocusEvent struct {
	Focused bool
}

// UnknownEvent wraps everything else the terminal may report (paste
// markers, interrupts, errors)
type UnknownEvent struct{}

func (KeyEvent) isEvent()     {}
func (ResizeEvent) isEvent()  {}
func (MouseEvent) isEvent()   {}
func (FocusEvent) isEvent()   {}
func (UnknownEvent) isEvent() {}

// Rune builds a key event for a printable character
func Rune(r rune, mod Modifier) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: mod}
}

// Ctrl builds a Ctrl+letter key event
func Ctrl(letter rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: letter, Mod: ModCtrl}
}

// Special builds a key event for a non-character key
func Special(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// translateEvent converts a tcell event into the package's event model.
// A nil tcell event (screen finalized) yields nil.
func translateEvent(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return nil
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return ResizeEvent{Cols: cols, Rows: rows}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return MouseEvent{X: x, Y: y}
	case *tcell.EventFocus:
		return FocusEvent{Focused: ev.Focused}
	default:
		return UnknownEvent{}
	}
}

func translateKey(ev *tcell.EventKey) KeyEvent {
	mod := translateMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace, Mod: mod}
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return KeyEvent{Key: KeyBacktab, Mod: mod}
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape, Mod: mod}
	case tcell.KeyDelete:
		return KeyEvent{Key: KeyDelete, Mod: mod}
	case tcell.KeyInsert:
		return KeyEvent{Key: KeyInsert, Mod: mod}
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp, Mod: mod}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight, Mod: mod}
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd, Mod: mod}
	case tcell.KeyPgUp:
		return KeyEvent{Key: KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return KeyEvent{Key: KeyPageDown, Mod: mod}
	default:
		// Ctrl+H, Ctrl+I and Ctrl+M share codes with Backspace, Tab and
		// Enter and were handled above.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			letter := rune('a' + int(k-tcell.KeyCtrlA))
			return KeyEvent{Key: KeyRune, Rune: letter, Mod: mod | ModCtrl}
		}
		if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
			return KeyEvent{Key: KeyFunction, Rune: rune(k - tcell.KeyF1 + 1), Mod: mod}
		}
		return KeyEvent{Key: KeyUnknown, Mod: mod}
	}
}

func translateMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}
