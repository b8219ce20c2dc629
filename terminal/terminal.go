package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Command is a decoded input action, delivered non-blocking to the
// simulation loop.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleDensityView
	CommandToggleDensityLevel
	CommandIncreaseWind
	CommandDecreaseWind
	CommandDirectionRight
	CommandDirectionLeft
	CommandResize
)

// Terminal wraps a tcell screen behind the small surface the simulation
// consumes: sizing, cell writes, frame presentation and non-blocking input.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	closed bool
}

// New initializes the terminal and starts the event pump goroutine. The
// caller must Close the terminal before reporting any error to the user.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events into the buffered channel Poll drains. It ends
// when the screen is finalized, at which point PollEvent returns nil.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
	t.screen.Fini()
}

// Size returns the surface dimensions as rows, cols.
func (t *Terminal) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

// Clear erases the pending frame.
func (t *Terminal) Clear() { t.screen.Clear() }

// SetCell writes a glyph at the given cell. Writes outside the surface are
// silently dropped.
func (t *Terminal) SetCell(row, col int, ch rune, style tcell.Style) {
	w, h := t.screen.Size()
	if row < 0 || row >= h || col < 0 || col >= w {
		return
	}
	t.screen.SetContent(col, row, ch, nil, style)
}

// Show presents the composed frame.
func (t *Terminal) Show() { t.screen.Show() }

// Poll drains at most one pending event without blocking and maps it to a
// command. CommandNone means nothing relevant was pending.
func (t *Terminal) Poll() Command {
	select {
	case ev := <-t.events:
		return decode(ev)
	default:
		return CommandNone
	}
}

func decode(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return CommandQuit
		case tcell.KeyRight:
			return CommandDirectionRight
		case tcell.KeyLeft:
			return CommandDirectionLeft
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return CommandQuit
			case 'd', 'D':
				return CommandToggleDensityView
			case 'h', 'H':
				return CommandToggleDensityLevel
			case '+', '=':
				return CommandIncreaseWind
			case '-':
				return CommandDecreaseWind
			}
		}
	case *tcell.EventResize:
		return CommandResize
	}
	return CommandNone
}
