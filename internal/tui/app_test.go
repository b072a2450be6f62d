package tui

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	apperrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
	"github.com/diogo/termchat/internal/terminal"
)

// fakeTerminal records drawing calls and replays a fixed event list
type fakeTerminal struct {
	cols, rows int
	sizeErr    error
	events     []terminal.Event

	ops     []string
	failOp  string
	failErr error
}

func (f *fakeTerminal) Size() (int, int, error) {
	return f.cols, f.rows, f.sizeErr
}

func (f *fakeTerminal) PollEvent() (terminal.Event, bool) {
	if len(f.events) == 0 {
		return nil, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *fakeTerminal) record(op string, format string, args ...any) error {
	f.ops = append(f.ops, op+" "+fmt.Sprintf(format, args...))
	if f.failOp == op {
		return f.failErr
	}
	return nil
}

func (f *fakeTerminal) Print(x, y int, text string, style tcell.Style) (int, error) {
	fg, _, _ := style.Decompose()
	if err := f.record("print", "%d,%d %q fg=%v", x, y, text, fg); err != nil {
		return x, err
	}
	return x + utf8.RuneCountInString(text), nil
}

func (f *fakeTerminal) ClearLine(y int) error {
	return f.record("clear", "%d", y)
}

func (f *fakeTerminal) ShowCursor(x, y int) error {
	return f.record("cursor", "%d,%d", x, y)
}

func (f *fakeTerminal) Flush() error {
	return f.record("flush", "")
}

func (f *fakeTerminal) count(op string) int {
	n := 0
	for _, o := range f.ops {
		if strings.HasPrefix(o, op+" ") {
			n++
		}
	}
	return n
}

func keys(evs ...terminal.KeyEvent) []terminal.Event {
	out := make([]terminal.Event, len(evs))
	for i, ev := range evs {
		out[i] = ev
	}
	return out
}

func r(c rune) terminal.KeyEvent { return terminal.Rune(c, terminal.ModNone) }

var (
	enter     = terminal.Special(terminal.KeyEnter)
	backspace = terminal.Special(terminal.KeyBackspace)
	ctrlC     = terminal.Ctrl('c')
)

func TestApp_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		events []terminal.Event
		want   []models.Message
	}{
		{
			name:   "type and commit",
			events: keys(r('h'), r('i'), enter, ctrlC),
			want:   []models.Message{models.NewUserMessage("hi")},
		},
		{
			name:   "backspace to empty then enter",
			events: keys(backspace, r('a'), backspace, enter, ctrlC),
			want:   []models.Message{},
		},
		{
			name:   "immediate quit",
			events: keys(ctrlC),
			want:   []models.Message{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &fakeTerminal{cols: 80, rows: 24, events: tt.events}
			app := NewApp(term)

			if err := app.Run(); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if diff := cmp.Diff(tt.want, app.Model().History()); diff != "" {
				t.Errorf("History() mismatch (-want +got):\n%s", diff)
			}
			if app.Model().Pending() != "" {
				t.Errorf("Pending() = %q, want empty", app.Model().Pending())
			}
			if !app.Model().QuitRequested() {
				t.Error("QuitRequested() should be true")
			}
		})
	}
}

func TestApp_CtrlCStopsConsumingEvents(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 24, events: keys(r('a'), ctrlC, r('b'), enter)}
	app := NewApp(term)

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(term.events) != 2 {
		t.Errorf("events left after quit = %d, want 2", len(term.events))
	}
	if app.Model().Pending() != "a" {
		t.Errorf("Pending() = %q, want %q", app.Model().Pending(), "a")
	}
}

func TestApp_InputRow(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{24, 22},
		{3, 1},
		{2, 0},
		{1, 0},
		{0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rows=%d", tt.rows), func(t *testing.T) {
			term := &fakeTerminal{cols: 80, rows: tt.rows, events: keys(ctrlC)}
			app := NewApp(term)
			if err := app.Run(); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if app.InputRow() != tt.want {
				t.Errorf("InputRow() = %d, want %d", app.InputRow(), tt.want)
			}
			if term.ops[0] != fmt.Sprintf("clear %d", tt.want) {
				t.Errorf("first op = %q, want clear of row %d", term.ops[0], tt.want)
			}
		})
	}
}

func TestApp_InitialDraw(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 10, events: keys(ctrlC)}
	styles := DefaultStyles()
	userFg, _, _ := styles.User.Decompose()
	textFg, _, _ := styles.Text.Decompose()

	if err := NewApp(term, WithStyles(styles)).Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{
		"clear 8",
		fmt.Sprintf("print 0,8 %q fg=%v", "You: ", userFg),
		fmt.Sprintf("print 5,8 %q fg=%v", "", textFg),
		"cursor 5,8",
		"flush ",
	}
	if diff := cmp.Diff(want, term.ops); diff != "" {
		t.Errorf("initial draw mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_RedrawsAfterEachKey(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 10, events: keys(r('h'), r('i'), enter, ctrlC)}
	app := NewApp(term)
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// initial draw plus one redraw for each of h, i and Enter
	if got := term.count("flush"); got != 4 {
		t.Errorf("flushes = %d, want 4", got)
	}
	if got := term.count("clear"); got != 4 {
		t.Errorf("input line clears = %d, want 4", got)
	}

	// Ctrl+C skips the redraw, so the tail is the frame drawn after Enter
	last := term.ops[len(term.ops)-7:]
	userFg, _, _ := app.styles.User.Decompose()
	textFg, _, _ := app.styles.Text.Decompose()
	want := []string{
		fmt.Sprintf("print 0,0 %q fg=%v", "You: ", userFg),
		fmt.Sprintf("print 5,0 %q fg=%v", "hi", textFg),
		"clear 8",
		fmt.Sprintf("print 0,8 %q fg=%v", "You: ", userFg),
		fmt.Sprintf("print 5,8 %q fg=%v", "", textFg),
		"cursor 5,8",
		"flush ",
	}
	if diff := cmp.Diff(want, last); diff != "" {
		t.Errorf("last redraw mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_NonKeyEventsAreIgnored(t *testing.T) {
	term := &fakeTerminal{
		cols: 80,
		rows: 24,
		events: []terminal.Event{
			terminal.ResizeEvent{Cols: 100, Rows: 50},
			terminal.MouseEvent{X: 1, Y: 1},
			terminal.FocusEvent{Focused: true},
			terminal.UnknownEvent{},
			ctrlC,
		},
	}
	app := NewApp(term)
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := term.count("flush"); got != 1 {
		t.Errorf("flushes = %d, want only the initial one", got)
	}
	if app.InputRow() != 22 {
		t.Errorf("resize must not move the input row, got %d", app.InputRow())
	}
}

func TestApp_SizeFailureFallsBackToZero(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	term := &fakeTerminal{sizeErr: errors.New("inappropriate ioctl"), events: keys(r('x'), enter, ctrlC)}
	app := NewApp(term, WithLogger(logger))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() should continue after a size failure, got %v", err)
	}
	if app.InputRow() != 0 {
		t.Errorf("InputRow() = %d, want 0", app.InputRow())
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "inappropriate ioctl") {
		t.Errorf("expected a warning with the cause, got: %s", buf.String())
	}
	if app.Model().Len() != 1 {
		t.Errorf("Len() = %d, want 1", app.Model().Len())
	}
}

func TestApp_RenderErrorsAreFatal(t *testing.T) {
	broken := errors.New("broken pipe")

	for _, op := range []string{"clear", "print", "cursor", "flush"} {
		t.Run(op, func(t *testing.T) {
			term := &fakeTerminal{cols: 80, rows: 24, events: keys(r('a'), ctrlC), failOp: op, failErr: broken}
			app := NewApp(term)

			err := app.Run()
			if !errors.Is(err, broken) {
				t.Fatalf("Run() = %v, want broken pipe", err)
			}
			if !apperrors.IsRenderError(err) {
				t.Errorf("Run() error should be a RenderError, got %T", err)
			}
			if apperrors.GetOp(err) != op {
				t.Errorf("failed op = %q, want %q", apperrors.GetOp(err), op)
			}
			if len(term.events) != 2 {
				t.Errorf("no events should be read after the initial draw fails, %d left", len(term.events))
			}
		})
	}
}

func TestApp_RenderErrorKeepsContext(t *testing.T) {
	inner := apperrors.NewRenderError("print", 7, apperrors.ErrSessionInactive)
	term := &fakeTerminal{rows: 24, failOp: "print", failErr: inner}

	err := NewApp(term).Run()
	var re *apperrors.RenderError
	if !errors.As(err, &re) {
		t.Fatalf("Run() = %v, want RenderError", err)
	}
	if re != inner {
		t.Error("an error that is already a RenderError should be returned unchanged")
	}
}

func TestApp_InputClosed(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 24, events: keys(r('a'))}
	err := NewApp(term).Run()
	if !errors.Is(err, apperrors.ErrInputClosed) {
		t.Fatalf("Run() = %v, want ErrInputClosed", err)
	}
}

func TestApp_RedrawIsIdempotent(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 24, events: keys(r('o'), r('k'), enter, r('n'), ctrlC)}
	app := NewApp(term)
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	term.ops = nil
	if err := app.Redraw(); err != nil {
		t.Fatalf("Redraw() error: %v", err)
	}
	first := append([]string(nil), term.ops...)

	term.ops = nil
	if err := app.Redraw(); err != nil {
		t.Fatalf("Redraw() error: %v", err)
	}

	if diff := cmp.Diff(first, term.ops); diff != "" {
		t.Errorf("second redraw differs (-first +second):\n%s", diff)
	}
}

func TestApp_AssistantMessagesUseAssistantStyle(t *testing.T) {
	term := &fakeTerminal{cols: 80, rows: 24}
	app := NewApp(term)
	app.model.messages = append(app.model.messages,
		models.NewUserMessage("question"),
		models.NewAssistantMessage("answer"),
	)

	if err := app.Redraw(); err != nil {
		t.Fatalf("Redraw() error: %v", err)
	}

	asstFg, _, _ := app.styles.Assistant.Decompose()
	want := fmt.Sprintf("print 0,1 %q fg=%v", "Assistant: ", asstFg)
	if term.ops[2] != want {
		t.Errorf("ops[2] = %q, want %q", term.ops[2], want)
	}
	if !strings.HasPrefix(term.ops[3], `print 11,1 "answer"`) {
		t.Errorf("content should follow the label directly, got %q", term.ops[3])
	}
}

// End to end on a simulated terminal
func TestApp_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	session := terminal.NewSession(terminal.WithScreen(screen))

	styles := DefaultStyles()
	var app *App
	err := session.Run(func() error {
		screen.SetSize(40, 10)
		for _, ev := range []*tcell.EventKey{
			tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		} {
			if err := screen.PostEvent(ev); err != nil {
				return err
			}
		}

		app = NewApp(session, WithStyles(styles))
		if err := app.Run(); err != nil {
			return err
		}

		if got := screenRow(screen, 0, 7); got != "You: hi" {
			t.Errorf("row 0 = %q, want %q", got, "You: hi")
		}
		if got := screenRow(screen, 8, 7); got != "You: y " {
			t.Errorf("input row = %q, want %q", got, "You: y ")
		}

		_, _, style, _ := screen.GetContent(0, 0)
		wantFg, _, _ := styles.User.Decompose()
		if fg, _, _ := style.Decompose(); fg != wantFg {
			t.Errorf("label color = %v, want %v", fg, wantFg)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("session.Run() error: %v", err)
	}
	if session.Active() {
		t.Error("session should be stopped")
	}

	want := []models.Message{models.NewUserMessage("hi")}
	if diff := cmp.Diff(want, app.Model().History()); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

func screenRow(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(c)
	}
	return sb.String()
}
