package noise

import "github.com/rgaf/demiurge/internal/geometry"

// Harmonic sums octaves of its source. Octave k samples the source at
// lacunarity^k times the point and weighs it by persistence^k; the sum is
// divided by the total weight so the result keeps the source's range.
type Harmonic struct {
	source      Node
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewHarmonic(source Node, octaves int, persistence, lacunarity float64) *Harmonic {
	if octaves < 1 {
		panic("noise: harmonic needs at least one octave")
	}
	return &Harmonic{source: source, octaves: octaves, persistence: persistence, lacunarity: lacunarity}
}

func (n *Harmonic) ValueAt(p geometry.RealPoint) float64 {
	var value, total float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < n.octaves; i++ {
		value += n.source.ValueAt(p.MulScalar(frequency)) * amplitude
		total += amplitude
		amplitude *= n.persistence
		frequency *= n.lacunarity
	}
	return value / total
}
