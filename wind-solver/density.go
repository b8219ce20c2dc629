package wind

// Layers is the number of depth layers the compositor keeps.
const Layers = 3

// DensityMap composites particle positions into one flattened occupancy grid
// per depth layer for the alternate visualization. An empty cell holds the
// zero rune.
type DensityMap struct {
	rows, cols int
	layers     [Layers][]rune
}

// NewDensityMap allocates the layer grids for the given dimensions.
func NewDensityMap(rows, cols int) *DensityMap {
	d := &DensityMap{}
	d.Rebuild(rows, cols)
	return d
}

// Rebuild reallocates all layers, dropping any previous contents.
func (d *DensityMap) Rebuild(rows, cols int) {
	d.rows, d.cols = rows, cols
	for i := range d.layers {
		d.layers[i] = make([]rune, rows*cols)
	}
}

// Update recomputes every layer from the current particle positions. The last
// particle written to a cell wins; there is no blending.
func (d *DensityMap) Update(particles []*Particle) {
	for i := range d.layers {
		layer := d.layers[i]
		for j := range layer {
			layer[j] = 0
		}
	}

	for _, p := range particles {
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= d.cols || y < 0 || y >= d.rows {
			continue
		}
		bucket := int(p.Density * float64(len(densityGlyphs)))
		if bucket >= len(densityGlyphs) {
			bucket = len(densityGlyphs) - 1
		}
		layer := p.Layer - 1
		if layer < 0 {
			layer = 0
		} else if layer >= Layers {
			layer = Layers - 1
		}
		d.layers[layer][y*d.cols+x] = densityGlyphs[bucket]
	}
}

// Cell returns the glyph occupying the cell on the given layer, or the zero
// rune when the cell is empty or out of range.
func (d *DensityMap) Cell(layer, row, col int) rune {
	if layer < 0 || layer >= Layers || row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0
	}
	return d.layers[layer][row*d.cols+col]
}
