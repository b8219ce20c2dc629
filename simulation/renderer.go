package simulation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/esimov/ascii-wind/terminal"
	wind "github.com/esimov/ascii-wind/wind-solver"
)

// Mode selects how a frame is composed.
type Mode int

const (
	ModeParticles Mode = iota
	ModeDensity
)

const helpLine = "q quit  d density view  h density level  +/- wind  ←/→ direction"

// Renderer turns simulation state into glyphs on the surface.
type Renderer struct {
	surface Surface
	palette terminal.Palette
}

// NewRenderer binds a renderer to its surface and palette.
func NewRenderer(surface Surface, palette terminal.Palette) *Renderer {
	return &Renderer{surface: surface, palette: palette}
}

// Draw composes one full frame: the selected visualization plus the status
// overlay, then presents it.
func (r *Renderer) Draw(s *Simulation) {
	r.surface.Clear()
	switch s.mode() {
	case ModeDensity:
		r.drawDensity(s.density)
	default:
		r.drawParticles(s.system.Particles(), s.sample)
	}
	r.drawOverlay(s)
	r.surface.Show()
}

// drawDensity paints the layer grids bottom to top so deeper layers are
// overdrawn by shallower ones.
func (r *Renderer) drawDensity(d *wind.DensityMap) {
	rows, cols := r.surface.Size()
	for layer := 0; layer < wind.Layers; layer++ {
		style := r.palette.Layers[layer]
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if ch := d.Cell(layer, y, x); ch != 0 {
					r.surface.SetCell(y, x, ch, style)
				}
			}
		}
	}
}

// drawParticles renders the population ordered by ascending layer; cells
// outside the surface are dropped by SetCell.
func (r *Renderer) drawParticles(particles []*wind.Particle, sample wind.Sample) {
	ordered := make([]*wind.Particle, len(particles))
	copy(ordered, particles)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Layer < ordered[j].Layer })

	for _, p := range ordered {
		r.surface.SetCell(int(p.Y), int(p.X), p.Glyph, r.style(p, sample))
	}
}

// style picks the attribute for a particle: strong gusts highlight fast
// movers, otherwise depth alone decides the emphasis.
func (r *Renderer) style(p *wind.Particle, sample wind.Sample) tcell.Style {
	if sample.Gusting && sample.Strength > 2.0 {
		if p.Speed > 1.2 {
			return r.palette.Fast
		}
		return r.palette.Medium
	}
	switch p.Layer {
	case 1:
		return r.palette.WindDim
	case 3:
		return r.palette.WindBold
	default:
		return r.palette.Wind
	}
}

func (r *Renderer) drawOverlay(s *Simulation) {
	rows, cols := r.surface.Size()

	bar := strings.Repeat("|", int(s.sample.Strength*4))
	arrow := '→'
	if s.sample.Direction < 0 {
		arrow = '←'
	}
	info := fmt.Sprintf("Wind: %s %.1f %c", bar, s.sample.Strength, arrow)
	if s.sample.Gusting {
		info += " GUST!"
	}
	info += fmt.Sprintf(" Parts: %d", s.system.Len())
	r.drawText(0, 0, info, r.palette.Info)

	mode := "Mode: Normal"
	if s.highDensity {
		mode = "Mode: HIGH DENSITY"
	}
	if s.showDensity {
		mode += " | DENSITY VISUALIZATION"
	}
	if runewidth.StringWidth(mode) < cols {
		r.drawText(1, 0, mode, r.palette.Help)
	}

	if runewidth.StringWidth(helpLine) < cols {
		r.drawText(rows-1, 0, helpLine, r.palette.Help)
	}
}

// drawText writes a string left to right, advancing by display width.
func (r *Renderer) drawText(row, col int, text string, style tcell.Style) {
	for _, ch := range text {
		r.surface.SetCell(row, col, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}
