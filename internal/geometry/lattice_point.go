package geometry

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// LatticePoint is a vector of int32 coordinates. Division and remainder
// truncate toward zero, and dividing by zero panics, as Go integers do.
type LatticePoint []int32

func NewLatticePoint(coordinates ...int32) LatticePoint {
	p := make(LatticePoint, len(coordinates))
	copy(p, coordinates)
	return p
}

func LatticeOrigin(dim int) LatticePoint {
	return make(LatticePoint, dim)
}

func LatticeDiagonal(dim int, scalar int32) LatticePoint {
	p := make(LatticePoint, dim)
	for i := range p {
		p[i] = scalar
	}
	return p
}

func (p LatticePoint) Dim() int {
	return len(p)
}

func (p LatticePoint) Clone() LatticePoint {
	return NewLatticePoint(p...)
}

func (p LatticePoint) Equal(q LatticePoint) bool {
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

// Neighbors enumerates the 3^D - 1 lattice points around p.
func (p LatticePoint) Neighbors() *LatticeNeighborhood {
	return NewLatticeNeighborhood(p, false)
}

// NeighborsAndSelf enumerates the 3^D lattice points around and including p.
func (p LatticePoint) NeighborsAndSelf() *LatticeNeighborhood {
	return NewLatticeNeighborhood(p, true)
}

func (p LatticePoint) Add(q LatticePoint) LatticePoint { return p.zip(q, func(a, b int32) int32 { return a + b }) }
func (p LatticePoint) Sub(q LatticePoint) LatticePoint { return p.zip(q, func(a, b int32) int32 { return a - b }) }
func (p LatticePoint) Mul(q LatticePoint) LatticePoint { return p.zip(q, func(a, b int32) int32 { return a * b }) }
func (p LatticePoint) Div(q LatticePoint) LatticePoint { return p.zip(q, func(a, b int32) int32 { return a / b }) }
func (p LatticePoint) Rem(q LatticePoint) LatticePoint { return p.zip(q, func(a, b int32) int32 { return a % b }) }

func (p LatticePoint) AddScalar(s int32) LatticePoint { return p.each(func(c int32) int32 { return c + s }) }
func (p LatticePoint) SubScalar(s int32) LatticePoint { return p.each(func(c int32) int32 { return c - s }) }
func (p LatticePoint) MulScalar(s int32) LatticePoint { return p.each(func(c int32) int32 { return c * s }) }
func (p LatticePoint) DivScalar(s int32) LatticePoint { return p.each(func(c int32) int32 { return c / s }) }
func (p LatticePoint) RemScalar(s int32) LatticePoint { return p.each(func(c int32) int32 { return c % s }) }

func (p LatticePoint) AddInPlace(q LatticePoint) { p.zipInPlace(q, func(a, b int32) int32 { return a + b }) }
func (p LatticePoint) SubInPlace(q LatticePoint) { p.zipInPlace(q, func(a, b int32) int32 { return a - b }) }
func (p LatticePoint) MulInPlace(q LatticePoint) { p.zipInPlace(q, func(a, b int32) int32 { return a * b }) }
func (p LatticePoint) DivInPlace(q LatticePoint) { p.zipInPlace(q, func(a, b int32) int32 { return a / b }) }
func (p LatticePoint) RemInPlace(q LatticePoint) { p.zipInPlace(q, func(a, b int32) int32 { return a % b }) }

func (p LatticePoint) AddScalarInPlace(s int32) { p.eachInPlace(func(c int32) int32 { return c + s }) }
func (p LatticePoint) SubScalarInPlace(s int32) { p.eachInPlace(func(c int32) int32 { return c - s }) }
func (p LatticePoint) MulScalarInPlace(s int32) { p.eachInPlace(func(c int32) int32 { return c * s }) }
func (p LatticePoint) DivScalarInPlace(s int32) { p.eachInPlace(func(c int32) int32 { return c / s }) }
func (p LatticePoint) RemScalarInPlace(s int32) { p.eachInPlace(func(c int32) int32 { return c % s }) }

func (p LatticePoint) Abs() LatticePoint {
	return p.each(func(c int32) int32 {
		if c < 0 {
			return -c
		}
		return c
	})
}

func (p LatticePoint) Sum() int32 {
	var sum int32
	for _, c := range p {
		sum += c
	}
	return sum
}

func (p LatticePoint) Dot(q LatticePoint) int32 {
	return p.Mul(q).Sum()
}

func (p LatticePoint) Magnitude(m Metric) int32 {
	return m.LatticeMagnitude(p)
}

func (p LatticePoint) ToReal() RealPoint {
	out := make(RealPoint, len(p))
	for i, c := range p {
		out[i] = float64(c)
	}
	return out
}

// AppendBytes appends the hash encoding of p: one little-endian int32 per
// coordinate, in coordinate order.
func (p LatticePoint) AppendBytes(dst []byte) []byte {
	for _, c := range p {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(c))
	}
	return dst
}

func (p LatticePoint) Bytes() []byte {
	return p.AppendBytes(make([]byte, 0, len(p)*4))
}

func (p LatticePoint) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.FormatInt(int64(c), 10)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p LatticePoint) each(f func(int32) int32) LatticePoint {
	out := make(LatticePoint, len(p))
	for i, c := range p {
		out[i] = f(c)
	}
	return out
}

func (p LatticePoint) eachInPlace(f func(int32) int32) {
	for i, c := range p {
		p[i] = f(c)
	}
}

func (p LatticePoint) zip(q LatticePoint, f func(a, b int32) int32) LatticePoint {
	mustMatch(len(p), len(q))
	out := make(LatticePoint, len(p))
	for i := range p {
		out[i] = f(p[i], q[i])
	}
	return out
}

func (p LatticePoint) zipInPlace(q LatticePoint, f func(a, b int32) int32) {
	mustMatch(len(p), len(q))
	for i := range p {
		p[i] = f(p[i], q[i])
	}
}
