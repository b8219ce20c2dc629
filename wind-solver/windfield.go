package wind

import (
	"math"
	"math/rand"
)

// Per-tick probabilities for spontaneous events. High density mode churns
// harder.
const (
	gustChanceHigh = 0.01
	gustChanceLow  = 0.005
	flipChanceHigh = 0.003
	flipChanceLow  = 0.001

	defaultCenter = 1.2
	minCenter     = 0.1
	maxCenter     = 8.0
)

// Sample is the per-tick output of the wind field, consumed read-only by the
// particle system and the renderer.
type Sample struct {
	Strength  float64
	Direction int
	Gusting   bool
}

// Field generates wind strength and direction over time: a smoothed base
// built from two slow sinusoids, an occasional time-boxed gust on top, and
// rare spontaneous direction reversals.
type Field struct {
	rng         *rand.Rand
	highDensity bool

	timer     float64
	center    float64
	base      float64
	current   float64
	direction int

	gustActive   bool
	gustElapsed  float64
	gustDuration float64
	gustPeak     float64
}

// NewField creates a wind field blowing rightward at calm strength.
func NewField(rng *rand.Rand, highDensity bool) *Field {
	return &Field{
		rng:         rng,
		highDensity: highDensity,
		center:      defaultCenter,
		base:        defaultCenter,
		current:     defaultCenter,
		direction:   1,
	}
}

// Advance moves the field forward by dt seconds and returns this tick's
// sample. Strength equals the sinusoid base exactly whenever no gust is
// active.
func (f *Field) Advance(dt float64) Sample {
	f.timer += dt

	variation := 0.4*math.Sin(f.timer*0.8) + 0.2*math.Cos(f.timer*0.3)
	f.base = math.Max(0.5, f.center+variation)

	gustChance, flipChance := gustChanceLow, flipChanceLow
	if f.highDensity {
		gustChance, flipChance = gustChanceHigh, flipChanceHigh
	}

	if !f.gustActive && f.rng.Float64() < gustChance {
		f.gustActive = true
		f.gustElapsed = 0
		f.gustDuration = uniform(f.rng, 0.3, 1.2)
		f.gustPeak = uniform(f.rng, 2.5, 5.0)
	}

	if f.gustActive {
		f.gustElapsed += dt
		if f.gustElapsed < f.gustDuration {
			progress := f.gustElapsed / f.gustDuration
			f.current = f.base + f.gustPeak*gustEnvelope(progress)
		} else {
			f.gustActive = false
			f.current = f.base
		}
	} else {
		f.current = f.base
	}

	if f.rng.Float64() < flipChance {
		f.direction = -f.direction
	}

	return Sample{Strength: f.current, Direction: f.direction, Gusting: f.gustActive}
}

// gustEnvelope ramps up over the first fifth of a gust, holds the plateau,
// and ramps back down over the last fifth.
func gustEnvelope(progress float64) float64 {
	switch {
	case progress < 0.2:
		return progress / 0.2
	case progress < 0.8:
		return 1.0
	default:
		return 1.0 - (progress-0.8)/0.2
	}
}

// ForceDirection pins the wind direction; any negative d means leftward.
func (f *Field) ForceDirection(d int) {
	if d < 0 {
		f.direction = -1
	} else {
		f.direction = 1
	}
}

// Direction returns the current direction without advancing the field.
func (f *Field) Direction() int { return f.direction }

// Adjust shifts the calm-weather strength the sinusoids oscillate around,
// clamped to [0.1, 8.0]. The shift persists across ticks.
func (f *Field) Adjust(delta float64) {
	f.center = math.Min(maxCenter, math.Max(minCenter, f.center+delta))
}

// SetHighDensity switches the event probabilities between modes.
func (f *Field) SetHighDensity(high bool) { f.highDensity = high }
