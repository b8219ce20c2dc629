package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDecode(t *testing.T) {
	key := func(k tcell.Key, r rune) tcell.Event {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}
	tests := []struct {
		name string
		ev   tcell.Event
		want Command
	}{
		{"quit lower", key(tcell.KeyRune, 'q'), CommandQuit},
		{"quit upper", key(tcell.KeyRune, 'Q'), CommandQuit},
		{"quit escape", key(tcell.KeyEscape, 0), CommandQuit},
		{"quit ctrl-c", key(tcell.KeyCtrlC, 0), CommandQuit},
		{"density view", key(tcell.KeyRune, 'd'), CommandToggleDensityView},
		{"density view upper", key(tcell.KeyRune, 'D'), CommandToggleDensityView},
		{"density level", key(tcell.KeyRune, 'h'), CommandToggleDensityLevel},
		{"increase", key(tcell.KeyRune, '+'), CommandIncreaseWind},
		{"increase unshifted", key(tcell.KeyRune, '='), CommandIncreaseWind},
		{"decrease", key(tcell.KeyRune, '-'), CommandDecreaseWind},
		{"right arrow", key(tcell.KeyRight, 0), CommandDirectionRight},
		{"left arrow", key(tcell.KeyLeft, 0), CommandDirectionLeft},
		{"resize", tcell.NewEventResize(80, 24), CommandResize},
		{"unmapped rune", key(tcell.KeyRune, 'x'), CommandNone},
		{"unmapped key", key(tcell.KeyTab, 0), CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode(tt.ev); got != tt.want {
				t.Errorf("decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPalette(t *testing.T) {
	for _, name := range Hues() {
		if _, err := NewPalette(name); err != nil {
			t.Errorf("NewPalette(%q): %v", name, err)
		}
	}
	if _, err := NewPalette("CYAN"); err != nil {
		t.Errorf("palette names should be case-insensitive: %v", err)
	}
	if _, err := NewPalette("chartreuse"); err == nil {
		t.Error("expected an error for an unsupported color")
	}
}

func TestPaletteEmphasis(t *testing.T) {
	palette, err := NewPalette("cyan")
	if err != nil {
		t.Fatal(err)
	}
	if palette.Wind == palette.WindBold || palette.Wind == palette.WindDim {
		t.Error("layer emphasis styles must differ from the plain wind style")
	}
	if palette.Layers[2] == palette.Layers[0] {
		t.Error("top density layer must differ from the bottom one")
	}
}
