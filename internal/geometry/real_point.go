// Package geometry holds the dimension-generic vector kernel used by every
// noise generator: real and lattice points, distance metrics, neighborhood
// enumeration and linear maps.
//
// The dimension of a point is its length. Binary operations require both
// operands to share a dimension and panic otherwise; like an out-of-range
// index, a mismatch is a programming error rather than a runtime condition.
package geometry

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RealPoint is a vector of float64 coordinates. Operations return new points
// unless their name ends in InPlace.
type RealPoint []float64

func NewRealPoint(coordinates ...float64) RealPoint {
	p := make(RealPoint, len(coordinates))
	copy(p, coordinates)
	return p
}

func RealOrigin(dim int) RealPoint {
	return make(RealPoint, dim)
}

func RealDiagonal(dim int, scalar float64) RealPoint {
	p := make(RealPoint, dim)
	for i := range p {
		p[i] = scalar
	}
	return p
}

func (p RealPoint) Dim() int {
	return len(p)
}

func (p RealPoint) Clone() RealPoint {
	return NewRealPoint(p...)
}

func (p RealPoint) Equal(q RealPoint) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p RealPoint) VertexNeighborhood() *VertexNeighborhood {
	return NewVertexNeighborhood(p)
}

func (p RealPoint) Add(q RealPoint) RealPoint { return p.zip(q, func(a, b float64) float64 { return a + b }) }
func (p RealPoint) Sub(q RealPoint) RealPoint { return p.zip(q, func(a, b float64) float64 { return a - b }) }
func (p RealPoint) Mul(q RealPoint) RealPoint { return p.zip(q, func(a, b float64) float64 { return a * b }) }
func (p RealPoint) Div(q RealPoint) RealPoint { return p.zip(q, func(a, b float64) float64 { return a / b }) }
func (p RealPoint) Rem(q RealPoint) RealPoint { return p.zip(q, math.Mod) }

func (p RealPoint) AddScalar(s float64) RealPoint { return p.each(func(c float64) float64 { return c + s }) }
func (p RealPoint) SubScalar(s float64) RealPoint { return p.each(func(c float64) float64 { return c - s }) }
func (p RealPoint) MulScalar(s float64) RealPoint { return p.each(func(c float64) float64 { return c * s }) }
func (p RealPoint) DivScalar(s float64) RealPoint { return p.each(func(c float64) float64 { return c / s }) }
func (p RealPoint) RemScalar(s float64) RealPoint { return p.each(func(c float64) float64 { return math.Mod(c, s) }) }

func (p RealPoint) AddInPlace(q RealPoint) { p.zipInPlace(q, func(a, b float64) float64 { return a + b }) }
func (p RealPoint) SubInPlace(q RealPoint) { p.zipInPlace(q, func(a, b float64) float64 { return a - b }) }
func (p RealPoint) MulInPlace(q RealPoint) { p.zipInPlace(q, func(a, b float64) float64 { return a * b }) }
func (p RealPoint) DivInPlace(q RealPoint) { p.zipInPlace(q, func(a, b float64) float64 { return a / b }) }
func (p RealPoint) RemInPlace(q RealPoint) { p.zipInPlace(q, math.Mod) }

func (p RealPoint) AddScalarInPlace(s float64) { p.eachInPlace(func(c float64) float64 { return c + s }) }
func (p RealPoint) SubScalarInPlace(s float64) { p.eachInPlace(func(c float64) float64 { return c - s }) }
func (p RealPoint) MulScalarInPlace(s float64) { p.eachInPlace(func(c float64) float64 { return c * s }) }
func (p RealPoint) DivScalarInPlace(s float64) { p.eachInPlace(func(c float64) float64 { return c / s }) }
func (p RealPoint) RemScalarInPlace(s float64) {
	p.eachInPlace(func(c float64) float64 { return math.Mod(c, s) })
}

func (p RealPoint) Abs() RealPoint   { return p.each(math.Abs) }
func (p RealPoint) Floor() RealPoint { return p.each(math.Floor) }
func (p RealPoint) Ceil() RealPoint  { return p.each(math.Ceil) }
func (p RealPoint) Round() RealPoint { return p.each(math.Round) }
func (p RealPoint) Trunc() RealPoint { return p.each(math.Trunc) }

// Fract keeps the sign of each coordinate: Fract(-1.25) is -0.25.
func (p RealPoint) Fract() RealPoint {
	return p.each(func(c float64) float64 { return c - math.Trunc(c) })
}

func (p RealPoint) Powi(exp int) RealPoint {
	return p.each(func(c float64) float64 { return math.Pow(c, float64(exp)) })
}

func (p RealPoint) Powf(exp float64) RealPoint {
	return p.each(func(c float64) float64 { return math.Pow(c, exp) })
}

// MulAdd returns p*a + b with a single rounding per coordinate.
func (p RealPoint) MulAdd(a, b RealPoint) RealPoint {
	mustMatch(len(p), len(a))
	mustMatch(len(p), len(b))
	out := make(RealPoint, len(p))
	for i := range p {
		out[i] = math.FMA(p[i], a[i], b[i])
	}
	return out
}

func (p RealPoint) IsFinite() bool {
	for _, c := range p {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}

// Sum adds coordinates left to right.
func (p RealPoint) Sum() float64 {
	var sum float64
	for _, c := range p {
		sum += c
	}
	return sum
}

func (p RealPoint) Dot(q RealPoint) float64 {
	return p.Mul(q).Sum()
}

func (p RealPoint) Magnitude(m Metric) float64 {
	return m.RealMagnitude(p)
}

// Normalize scales p to unit Euclidean length. The origin normalizes to NaN.
func (p RealPoint) Normalize() RealPoint {
	return p.DivScalar(p.Magnitude(Euclidean{}))
}

// ToLattice floors every coordinate and truncates it to int32.
func (p RealPoint) ToLattice() LatticePoint {
	out := make(LatticePoint, len(p))
	for i, c := range p {
		out[i] = int32(math.Floor(c))
	}
	return out
}

// AppendBytes appends the hash encoding of p: one little-endian IEEE-754
// double per coordinate, in coordinate order.
func (p RealPoint) AppendBytes(dst []byte) []byte {
	for _, c := range p {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(c))
	}
	return dst
}

func (p RealPoint) Bytes() []byte {
	return p.AppendBytes(make([]byte, 0, len(p)*8))
}

func (p RealPoint) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p RealPoint) each(f func(float64) float64) RealPoint {
	out := make(RealPoint, len(p))
	for i, c := range p {
		out[i] = f(c)
	}
	return out
}

func (p RealPoint) eachInPlace(f func(float64) float64) {
	for i, c := range p {
		p[i] = f(c)
	}
}

func (p RealPoint) zip(q RealPoint, f func(a, b float64) float64) RealPoint {
	mustMatch(len(p), len(q))
	out := make(RealPoint, len(p))
	for i := range p {
		out[i] = f(p[i], q[i])
	}
	return out
}

func (p RealPoint) zipInPlace(q RealPoint, f func(a, b float64) float64) {
	mustMatch(len(p), len(q))
	for i := range p {
		p[i] = f(p[i], q[i])
	}
}

func mustMatch(lhs, rhs int) {
	if lhs != rhs {
		panic(fmt.Sprintf("geometry: dimension mismatch (%d vs %d)", lhs, rhs))
	}
}
