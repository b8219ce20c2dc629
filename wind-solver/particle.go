package wind

import (
	"math"
	"math/rand"
)

// motionGlyphs are the symbols particles are drawn with in the normal view.
var motionGlyphs = []rune{
	'·', '°', '~', '∴', '∵', '⋮', '⋯', '︙',
	'⡀', '⡄', '⡆', '⡇', '⣀', '⣤', '⣦', '⣶', '⣷', '⣿',
}

// densityGlyphs are the shade blocks used by the density visualization,
// ordered from sparse to solid.
var densityGlyphs = []rune{'░', '▒', '▓', '█', '🮆', '🮇', '🮈', '🮉'}

// Particle is a single animated glyph carried by the wind. Position is kept
// in floating point; the renderer truncates it to a cell.
type Particle struct {
	X, Y      float64
	Speed     float64
	Amplitude float64
	Frequency float64
	Phase     float64
	Layer     int
	Lifetime  float64
	Age       float64
	Glyph     rune
	Bucket    int
	Density   float64
	Opacity   float64
}

// NewParticle spawns a particle at {x, y} with freshly sampled motion
// parameters and age zero.
func NewParticle(rng *rand.Rand, x, y float64) *Particle {
	p := &Particle{X: x, Y: y}
	p.sample(rng)
	return p
}

// sample draws every per-life field anew. Position and age are the caller's
// business.
func (p *Particle) sample(rng *rand.Rand) {
	p.Speed = uniform(rng, 0.5, 1.5)
	p.Glyph = motionGlyphs[rng.Intn(len(motionGlyphs))]
	p.Amplitude = uniform(rng, 0.8, 3.0)
	p.Frequency = uniform(rng, 0.2, 0.5)
	p.Phase = uniform(rng, 0, 2*math.Pi)
	p.Lifetime = uniform(rng, 2, 6)
	p.Bucket = rng.Intn(len(densityGlyphs))
	p.Density = rng.Float64()
	p.Layer = 1 + rng.Intn(3)
	p.Opacity = uniform(rng, 0.7, 1.0)
}

// Update advances the particle by one tick under the given wind. The boundary
// checks run in a fixed order: horizontal exit resets, vertical exit clamps
// and reflects the phase, and lifetime expiry resets last, overriding
// whatever the earlier steps produced.
func (p *Particle) Update(rng *rand.Rand, dt, strength float64, direction, rows, cols int) {
	layerSpeed := p.Speed * (1 + float64(p.Layer-1)*0.3)
	p.X += layerSpeed * strength * float64(direction)

	base := math.Sin(p.Age*p.Frequency*8+p.Phase) * p.Amplitude
	secondary := math.Cos(p.Age*p.Frequency*4+2*p.Phase) * p.Amplitude * 0.3
	p.Y += (base + secondary) * 0.4

	p.Age += dt

	if p.X >= float64(cols) || p.X < 0 {
		p.Reset(rng, rows, cols)
	}

	if p.Y > float64(rows-1) {
		p.Y = float64(rows - 1)
		p.Phase += math.Pi
	} else if p.Y < 0 {
		p.Y = 0
		p.Phase += math.Pi
	}

	if p.Age >= p.Lifetime {
		p.Reset(rng, rows, cols)
	}
}

// Reset begins a new life. With 30% probability the particle re-enters at the
// windward column, otherwise anywhere on the grid. Every sampled field is
// redrawn together with the age so no stale parameter survives.
func (p *Particle) Reset(rng *rand.Rand, rows, cols int) {
	if rng.Float64() < 0.3 {
		p.X = 0
	} else {
		p.X = float64(rng.Intn(cols))
	}
	p.Y = float64(rng.Intn(rows))
	p.sample(rng)
	p.Age = 0
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
