package simulation

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/esimov/ascii-wind/terminal"
)

// fakeSurface records cell writes so tests can inspect composed frames.
type fakeSurface struct {
	rows, cols int
	cmds       []terminal.Command
	cells      map[[2]int]cellWrite
	order      []cellWrite
	clears     int
	shows      int
}

type cellWrite struct {
	row, col int
	ch       rune
	style    tcell.Style
}

func newFakeSurface(rows, cols int) *fakeSurface {
	return &fakeSurface{rows: rows, cols: cols, cells: map[[2]int]cellWrite{}}
}

func (f *fakeSurface) Size() (int, int) { return f.rows, f.cols }

func (f *fakeSurface) Clear() {
	f.clears++
	f.cells = map[[2]int]cellWrite{}
	f.order = nil
}

func (f *fakeSurface) SetCell(row, col int, ch rune, style tcell.Style) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return
	}
	w := cellWrite{row: row, col: col, ch: ch, style: style}
	f.cells[[2]int{row, col}] = w
	f.order = append(f.order, w)
}

func (f *fakeSurface) Show() { f.shows++ }

func (f *fakeSurface) Poll() terminal.Command {
	if len(f.cmds) == 0 {
		return terminal.CommandNone
	}
	cmd := f.cmds[0]
	f.cmds = f.cmds[1:]
	return cmd
}

// rowText reassembles a drawn row, with empty cells as spaces and trailing
// whitespace trimmed.
func (f *fakeSurface) rowText(row int) string {
	var b strings.Builder
	for col := 0; col < f.cols; col++ {
		if w, ok := f.cells[[2]int{row, col}]; ok {
			b.WriteRune(w.ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func testPalette(t *testing.T) terminal.Palette {
	t.Helper()
	palette, err := terminal.NewPalette("cyan")
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	return palette
}
