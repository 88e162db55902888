package geometry

import "math"

// Metric measures the magnitude of a vector.
type Metric interface {
	// DiagonalMagnitude is the length of the diagonal of a unit hypercube of
	// the given dimension. Generators use it to bound distances.
	DiagonalMagnitude(dim int) float64
	RealMagnitude(p RealPoint) float64
	LatticeMagnitude(p LatticePoint) int32
}

// Chebyshev measures the largest absolute coordinate.
type Chebyshev struct{}

func (Chebyshev) DiagonalMagnitude(int) float64 {
	return 1
}

func (Chebyshev) RealMagnitude(p RealPoint) float64 {
	var max float64
	for _, c := range p {
		if a := math.Abs(c); a > max {
			max = a
		}
	}
	return max
}

func (Chebyshev) LatticeMagnitude(p LatticePoint) int32 {
	var max int32
	for _, c := range p.Abs() {
		if c > max {
			max = c
		}
	}
	return max
}

// Euclidean is the straight-line distance.
type Euclidean struct{}

func (Euclidean) DiagonalMagnitude(dim int) float64 {
	return math.Sqrt(float64(dim))
}

func (Euclidean) RealMagnitude(p RealPoint) float64 {
	return math.Sqrt(p.Dot(p))
}

// LatticeMagnitude rounds the Euclidean length to the nearest integer.
func (Euclidean) LatticeMagnitude(p LatticePoint) int32 {
	return int32(math.Round(math.Sqrt(float64(p.Dot(p)))))
}

// Manhattan sums absolute coordinates.
type Manhattan struct{}

func (Manhattan) DiagonalMagnitude(dim int) float64 {
	return float64(dim)
}

func (Manhattan) RealMagnitude(p RealPoint) float64 {
	return p.Abs().Sum()
}

func (Manhattan) LatticeMagnitude(p LatticePoint) int32 {
	return p.Abs().Sum()
}

// Minkowski is the generalized norm (sum |c|^(P/Q))^(Q/P). P and Q must both
// be non-zero. Minkowski{P: 2, Q: 1} agrees with Euclidean and
// Minkowski{P: 1, Q: 1} with Manhattan.
type Minkowski struct {
	P int32
	Q int32
}

func (m Minkowski) exp() float64 {
	return float64(m.P) / float64(m.Q)
}

func (m Minkowski) expRecip() float64 {
	return float64(m.Q) / float64(m.P)
}

func (m Minkowski) DiagonalMagnitude(dim int) float64 {
	return math.Pow(float64(dim), m.expRecip())
}

func (m Minkowski) RealMagnitude(p RealPoint) float64 {
	return math.Pow(p.Abs().Powf(m.exp()).Sum(), m.expRecip())
}

// LatticeMagnitude is not defined for Minkowski metrics and always returns 0.
func (Minkowski) LatticeMagnitude(LatticePoint) int32 {
	return 0
}
