package terminal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// hues are the selectable base colors for the wind glyphs, mirroring the
// classic eight-color terminal palette.
var hues = map[string]tcell.Color{
	"black":   tcell.ColorBlack,
	"red":     tcell.ColorRed,
	"green":   tcell.ColorGreen,
	"yellow":  tcell.ColorYellow,
	"blue":    tcell.ColorBlue,
	"magenta": tcell.ColorFuchsia,
	"cyan":    tcell.ColorAqua,
	"white":   tcell.ColorWhite,
}

// Hues lists the valid color names, sorted for stable help output.
func Hues() []string {
	names := make([]string, 0, len(hues))
	for name := range hues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette is the fixed set of styles the renderer draws with, derived from a
// single configured wind hue.
type Palette struct {
	Wind     tcell.Style // layer 2 particles
	WindDim  tcell.Style // layer 1 particles
	WindBold tcell.Style // layer 3 particles
	Fast     tcell.Style // fast particles during a strong gust
	Medium   tcell.Style // remaining particles during a strong gust
	Layers   [3]tcell.Style
	Info     tcell.Style
	Help     tcell.Style
}

// NewPalette builds the style set for the named hue. The name must be one of
// Hues.
func NewPalette(name string) (Palette, error) {
	hue, ok := hues[strings.ToLower(name)]
	if !ok {
		return Palette{}, fmt.Errorf("unsupported color %q (valid: %s)", name, strings.Join(Hues(), ", "))
	}
	windStyle := tcell.StyleDefault.Foreground(hue)
	return Palette{
		Wind:     windStyle,
		WindDim:  windStyle.Dim(true),
		WindBold: windStyle.Bold(true),
		Fast:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Medium:   tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
		Layers: [3]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorBlue),
			tcell.StyleDefault.Foreground(tcell.ColorAqua),
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		},
		Info: tcell.StyleDefault.Bold(true),
		Help: tcell.StyleDefault.Dim(true),
	}, nil
}
