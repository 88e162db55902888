package noise

import (
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
	"github.com/rgaf/demiurge/internal/random"
)

// Static is white noise: the exact bits of the point are hashed, so any change
// in any coordinate gives an unrelated value in [min, max).
type Static struct {
	rng      random.Stateless
	min, max float64
}

func NewStatic(seed uint64, min, max float64) *Static {
	return &Static{rng: random.NewStateless(seed), min: min, max: max}
}

func (n *Static) ValueAt(p geometry.RealPoint) float64 {
	return mathx.F64FromMantissa(n.hash(p), n.min, n.max)
}

// hash matches HashBytes(p.Bytes()) in every dimension; the fixed-arity
// mixers only avoid the allocation.
func (n *Static) hash(p geometry.RealPoint) uint64 {
	switch len(p) {
	case 1:
		return n.rng.Hash1U64(math.Float64bits(p[0]))
	case 2:
		return n.rng.Hash2U64(math.Float64bits(p[0]), math.Float64bits(p[1]))
	case 3:
		return n.rng.Hash3U64(math.Float64bits(p[0]), math.Float64bits(p[1]), math.Float64bits(p[2]))
	default:
		return n.rng.HashBytes(p.Bytes())
	}
}

// Tile is white noise sampled once per lattice cell, giving a value in [0, 1)
// that is constant across each unit hypercube.
type Tile struct {
	rng random.Stateless
}

func NewTile(seed uint64) *Tile {
	return &Tile{rng: random.NewStateless(seed)}
}

func (n *Tile) ValueAt(p geometry.RealPoint) float64 {
	return mathx.F64FromMantissa(n.rng.HashBytes(p.Floor().Bytes()), 0, 1)
}
