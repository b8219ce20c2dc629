package simulation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/esimov/ascii-wind/terminal"
	wind "github.com/esimov/ascii-wind/wind-solver"
)

// tickInterval is the fixed wall-clock period of one simulation step; dt is
// the simulated time one tick carries, in seconds.
const (
	tickInterval = 30 * time.Millisecond
	dt           = 0.03
)

// Surface is the terminal the simulation draws to and reads input from.
// *terminal.Terminal satisfies it; tests substitute a fake.
type Surface interface {
	Size() (rows, cols int)
	Clear()
	SetCell(row, col int, ch rune, style tcell.Style)
	Show()
	Poll() terminal.Command
}

// Options configure a new simulation.
type Options struct {
	ShowDensity bool
	HighDensity bool
}

// state of the loop; the only transition is running -> stopped, on a quit
// command.
type state int

const (
	running state = iota
	stopped
)

// Simulation owns the wind field, the particle population, the density
// compositor and the renderer, and drives them at a fixed tick.
type Simulation struct {
	surface  Surface
	renderer *Renderer

	field   *wind.Field
	system  *wind.System
	density *wind.DensityMap
	sample  wind.Sample

	rows, cols  int
	showDensity bool
	highDensity bool
	state       state
	frames      uint64
	interval    time.Duration
}

// New wires a simulation against the given surface.
func New(surface Surface, palette terminal.Palette, rng *rand.Rand, opts Options) *Simulation {
	rows, cols := surface.Size()
	s := &Simulation{
		surface:     surface,
		rows:        rows,
		cols:        cols,
		showDensity: opts.ShowDensity,
		highDensity: opts.HighDensity,
		field:       wind.NewField(rng, opts.HighDensity),
		system:      wind.NewSystem(rng, rows, cols, opts.HighDensity),
		density:     wind.NewDensityMap(rows, cols),
		interval:    tickInterval,
	}
	s.renderer = NewRenderer(surface, palette)
	return s
}

// Run drives the loop until a quit command arrives. Each iteration polls one
// command, advances the model, renders, and sleeps whatever remains of the
// fixed tick. A slow frame is never compensated for.
func (s *Simulation) Run() {
	for s.state == running {
		started := time.Now()

		s.handle(s.surface.Poll())
		if s.state == stopped {
			return
		}

		s.step()
		s.renderer.Draw(s)
		s.frames++

		if elapsed := time.Since(started); elapsed < s.interval {
			time.Sleep(s.interval - elapsed)
		}
	}
}

func (s *Simulation) handle(cmd terminal.Command) {
	switch cmd {
	case terminal.CommandQuit:
		s.state = stopped
	case terminal.CommandToggleDensityView:
		s.showDensity = !s.showDensity
		if s.showDensity {
			s.density.Rebuild(s.rows, s.cols)
		}
	case terminal.CommandToggleDensityLevel:
		s.highDensity = !s.highDensity
		s.field.SetHighDensity(s.highDensity)
		s.system.SetHighDensity(s.highDensity)
	case terminal.CommandIncreaseWind:
		s.field.Adjust(0.3)
	case terminal.CommandDecreaseWind:
		s.field.Adjust(-0.3)
	case terminal.CommandDirectionRight:
		s.field.ForceDirection(1)
	case terminal.CommandDirectionLeft:
		s.field.ForceDirection(-1)
	case terminal.CommandResize:
		s.resize()
	}
}

// resize re-reads the surface dimensions and drops all state keyed to the
// old grid; stale coordinates must not carry into the next tick.
func (s *Simulation) resize() {
	s.rows, s.cols = s.surface.Size()
	s.system.Resize(s.rows, s.cols)
	s.density.Rebuild(s.rows, s.cols)
}

// step advances one tick: wind first, then population, then compositing.
func (s *Simulation) step() {
	s.sample = s.field.Advance(dt)
	s.system.SpawnToTarget()
	s.system.Advance(dt, s.sample)
	if s.showDensity {
		s.density.Update(s.system.Particles())
	}
}

func (s *Simulation) mode() Mode {
	if s.showDensity {
		return ModeDensity
	}
	return ModeParticles
}
