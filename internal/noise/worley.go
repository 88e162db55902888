package noise

import (
	"fmt"
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
	"github.com/rgaf/demiurge/internal/random"
)

// PaintMethod selects what a Worley leaf reports about the feature points
// around a query.
type PaintMethod int

const (
	// PaintValue reports the hash of the nearest cell, mapped to [0, 1).
	PaintValue PaintMethod = iota
	// PaintDistance reports the raw metric distance to the nearest feature
	// point. It is not normalized and can exceed 1.
	PaintDistance
	// PaintDistanceGap reports (second nearest - nearest) / diagonal,
	// clamped to [0, 1].
	PaintDistanceGap
)

func (m PaintMethod) String() string {
	switch m {
	case PaintValue:
		return "value"
	case PaintDistance:
		return "distance"
	case PaintDistanceGap:
		return "distance_gap"
	default:
		return fmt.Sprintf("PaintMethod(%d)", int(m))
	}
}

func ParsePaintMethod(s string) (PaintMethod, error) {
	switch s {
	case "value":
		return PaintValue, nil
	case "distance":
		return PaintDistance, nil
	case "distance_gap":
		return PaintDistanceGap, nil
	default:
		return 0, fmt.Errorf("unknown paint method %q", s)
	}
}

// Worley is cellular noise. Every lattice cell holds one feature point placed
// by a generator whose stream is the cell's hash; a query looks at its own
// cell and all neighbors.
type Worley struct {
	hasher random.Stateless
	// base is copied for every cell and never advanced itself.
	base   random.Stateful
	metric geometry.Metric
	paint  PaintMethod
}

func NewWorley(seed uint64, metric geometry.Metric, paint PaintMethod) *Worley {
	return &Worley{
		hasher: random.NewStateless(seed),
		base:   *random.NewStateful(seed),
		metric: metric,
		paint:  paint,
	}
}

type worleyCandidate struct {
	hash     uint64
	distance float64
}

func (w *Worley) ValueAt(p geometry.RealPoint) float64 {
	nearest := worleyCandidate{distance: math.Inf(1)}
	second := nearest

	// On equal distances the cell enumerated last wins.
	cells := p.ToLattice().NeighborsAndSelf()
	for cell, ok := cells.Next(); ok; cell, ok = cells.Next() {
		feature, hash := w.featurePoint(cell)
		c := worleyCandidate{hash: hash, distance: feature.Sub(p).Magnitude(w.metric)}
		switch {
		case c.distance <= nearest.distance:
			second, nearest = nearest, c
		case c.distance <= second.distance:
			second = c
		}
	}

	switch w.paint {
	case PaintDistance:
		return nearest.distance
	case PaintDistanceGap:
		gap := (second.distance - nearest.distance) / w.metric.DiagonalMagnitude(p.Dim())
		return mathx.Clamp01(gap)
	default:
		return mathx.F64FromMantissa(nearest.hash, 0, 1)
	}
}

func (w *Worley) featurePoint(cell geometry.LatticePoint) (geometry.RealPoint, uint64) {
	hash := w.hasher.HashBytes(cell.Bytes())

	rng := w.base
	rng.SetWordPos(0)
	rng.SetStream(hash)

	feature := cell.ToReal()
	for d := range feature {
		feature[d] += mathx.F64FromMantissa(rng.NextU64(), 0, 1)
	}
	return feature, hash
}
