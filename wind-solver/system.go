package wind

import "math/rand"

// maxParticles caps the population in high density mode.
const maxParticles = 2000

// System owns the particle population for one running simulation.
type System struct {
	rng         *rand.Rand
	rows, cols  int
	highDensity bool
	particles   []*Particle
}

// NewSystem creates an empty population for the given grid.
func NewSystem(rng *rand.Rand, rows, cols int, highDensity bool) *System {
	return &System{rng: rng, rows: rows, cols: cols, highDensity: highDensity}
}

// Target returns the population size the spawn policy maintains: 15% of the
// grid area (capped) in high density mode, half a row's worth otherwise.
func (s *System) Target() int {
	if s.highDensity {
		target := int(float64(s.rows*s.cols) * 0.15)
		if target > maxParticles {
			target = maxParticles
		}
		return target
	}
	return int(float64(s.cols) * 0.5)
}

// SpawnToTarget appends particles at random cells until the population
// reaches the target. It never removes particles; shrinking happens only
// through Clear.
func (s *System) SpawnToTarget() {
	for target := s.Target(); len(s.particles) < target; {
		x := float64(s.rng.Intn(s.cols))
		y := float64(s.rng.Intn(s.rows))
		s.particles = append(s.particles, NewParticle(s.rng, x, y))
	}
}

// Advance moves every particle one tick under the given wind sample.
func (s *System) Advance(dt float64, sample Sample) {
	for _, p := range s.particles {
		p.Update(s.rng, dt, sample.Strength, sample.Direction, s.rows, s.cols)
	}
}

// Particles exposes the live population for rendering and compositing.
func (s *System) Particles() []*Particle { return s.particles }

// Len returns the current population size.
func (s *System) Len() int { return len(s.particles) }

// Clear drops the whole population; the next SpawnToTarget refills it.
func (s *System) Clear() { s.particles = s.particles[:0] }

// Resize adopts new grid dimensions. Positions computed against the old size
// are meaningless, so the population is cleared.
func (s *System) Resize(rows, cols int) {
	s.rows, s.cols = rows, cols
	s.Clear()
}

// SetHighDensity switches the target policy and clears the population so the
// new target takes effect cleanly.
func (s *System) SetHighDensity(high bool) {
	s.highDensity = high
	s.Clear()
}
