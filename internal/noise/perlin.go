package noise

import (
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
	"github.com/rgaf/demiurge/internal/random"
)

var (
	halfSqrt2 = math.Sqrt2 / 2

	gradients2 = [8][2]float64{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{halfSqrt2, halfSqrt2}, {-halfSqrt2, halfSqrt2},
		{halfSqrt2, -halfSqrt2}, {-halfSqrt2, -halfSqrt2},
	}

	// Cube edge midpoints, scaled to unit length.
	gradients3 = [12][3]float64{
		{halfSqrt2, halfSqrt2, 0}, {-halfSqrt2, halfSqrt2, 0},
		{halfSqrt2, -halfSqrt2, 0}, {-halfSqrt2, -halfSqrt2, 0},
		{halfSqrt2, 0, halfSqrt2}, {-halfSqrt2, 0, halfSqrt2},
		{halfSqrt2, 0, -halfSqrt2}, {-halfSqrt2, 0, -halfSqrt2},
		{0, halfSqrt2, halfSqrt2}, {0, -halfSqrt2, halfSqrt2},
		{0, halfSqrt2, -halfSqrt2}, {0, -halfSqrt2, -halfSqrt2},
	}
)

// Perlin is gradient noise. Each lattice vertex gets a pseudo-random unit
// gradient chosen by hashing the vertex; the value at a point blends the
// gradient contributions of the 2^D corners of its cell with smoothstep
// weights. Output lies in [0, 1] and is exactly 0.5 on every lattice vertex.
type Perlin struct {
	dim       int
	rng       random.Stateless
	gradients []geometry.RealPoint
}

// NewPerlin builds Perlin noise for dim dimensions. Dimensions one to three use
// fixed gradient tables; higher dimensions draw a pool of 2^(dim+3) gradients
// from the seed up front.
func NewPerlin(dim int, seed uint64) *Perlin {
	if dim < 1 {
		panic("noise: perlin needs at least one dimension")
	}
	n := &Perlin{dim: dim, rng: random.NewStateless(seed)}
	if dim > 3 {
		n.gradients = gradientPool(dim, seed, 1<<(dim+3))
	}
	return n
}

func (n *Perlin) Dim() int {
	return n.dim
}

func (n *Perlin) ValueAt(p geometry.RealPoint) float64 {
	mustDim("perlin", n.dim, p.Dim())

	var v float64
	switch n.dim {
	case 1:
		v = n.value1(p[0])
	case 2:
		v = n.value2(p[0], p[1])
	case 3:
		v = n.value3(p[0], p[1], p[2])
	default:
		v = n.valueN(p)
	}
	// Raw values span [-sqrt(D)/2, sqrt(D)/2].
	v = v * 2 / math.Sqrt(float64(n.dim))
	return mathx.Smoothstep(mathx.NegUnitToUnit(v))
}

func (n *Perlin) value1(x float64) float64 {
	x0 := math.Floor(x)
	fx := x - x0
	ix := int64(x0)

	grad := func(dx int64) float64 {
		g := mathx.F64FromMantissa(n.rng.Hash1U64(uint64(ix+dx)), -1, 1)
		return g * (float64(dx) - fx)
	}
	return mathx.Lerp(mathx.Smoothstep(fx), grad(0), grad(1))
}

func (n *Perlin) value2(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int64(x0), int64(y0)

	grad := func(dx, dy int64) float64 {
		g := gradients2[n.rng.Hash2U64(uint64(ix+dx), uint64(iy+dy))&7]
		return g[0]*(float64(dx)-fx) + g[1]*(float64(dy)-fy)
	}
	sx, sy := mathx.Smoothstep(fx), mathx.Smoothstep(fy)
	lo := mathx.Lerp(sx, grad(0, 0), grad(1, 0))
	hi := mathx.Lerp(sx, grad(0, 1), grad(1, 1))
	return mathx.Lerp(sy, lo, hi)
}

func (n *Perlin) value3(x, y, z float64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := x-x0, y-y0, z-z0
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	grad := func(dx, dy, dz int64) float64 {
		h := n.rng.Hash3U64(uint64(ix+dx), uint64(iy+dy), uint64(iz+dz))
		g := gradients3[h%12]
		return g[0]*(float64(dx)-fx) + g[1]*(float64(dy)-fy) + g[2]*(float64(dz)-fz)
	}
	sx, sy, sz := mathx.Smoothstep(fx), mathx.Smoothstep(fy), mathx.Smoothstep(fz)
	y0z0 := mathx.Lerp(sx, grad(0, 0, 0), grad(1, 0, 0))
	y1z0 := mathx.Lerp(sx, grad(0, 1, 0), grad(1, 1, 0))
	y0z1 := mathx.Lerp(sx, grad(0, 0, 1), grad(1, 0, 1))
	y1z1 := mathx.Lerp(sx, grad(0, 1, 1), grad(1, 1, 1))
	return mathx.Lerp(sz, mathx.Lerp(sy, y0z0, y1z0), mathx.Lerp(sy, y0z1, y1z1))
}

// valueN collapses the corner contributions one dimension at a time. Corner
// i and i+1 differ only in the lowest remaining dimension, so each pass
// halves the slice.
func (n *Perlin) valueN(p geometry.RealPoint) float64 {
	values := make([]float64, 0, 1<<n.dim)
	corners := p.VertexNeighborhood()
	for v, ok := corners.Next(); ok; v, ok = corners.Next() {
		h := n.rng.HashBytes(v.ToLattice().Bytes())
		g := n.gradients[h%uint64(len(n.gradients))]
		values = append(values, v.Sub(p).Dot(g))
	}

	fract := p.Fract()
	for d := 0; d < n.dim; d++ {
		bias := mathx.Smoothstep(fract[d])
		half := len(values) / 2
		for i := 0; i < half; i++ {
			values[i] = mathx.Lerp(bias, values[2*i], values[2*i+1])
		}
		values = values[:half]
	}
	return values[0]
}

// gradientPool draws count unit vectors with coordinates uniform in [-1, 1)
// before normalization.
func gradientPool(dim int, seed uint64, count int) []geometry.RealPoint {
	rng := random.NewStateful(seed)
	pool := make([]geometry.RealPoint, 0, count)
	for len(pool) < count {
		g := make(geometry.RealPoint, dim)
		for d := range g {
			g[d] = mathx.F64FromMantissa(rng.NextU64(), -1, 1)
		}
		if g.Dot(g) == 0 {
			continue
		}
		pool = append(pool, g.Normalize())
	}
	return pool
}
