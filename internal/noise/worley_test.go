package noise

import (
	"math"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
	"github.com/rgaf/demiurge/internal/random"
)

var testMetrics = []geometry.Metric{
	geometry.Chebyshev{},
	geometry.Euclidean{},
	geometry.Manhattan{},
	geometry.Minkowski{P: 3, Q: 1},
}

// bruteNearest places feature points independently of Worley.featurePoint and
// returns the two smallest distances.
func bruteNearest(seed uint64, metric geometry.Metric, p geometry.RealPoint) (float64, float64) {
	hasher := random.NewStateless(seed)
	dists := []float64{}
	for _, cell := range p.ToLattice().NeighborsAndSelf().Collect() {
		rng := random.NewStateful(seed)
		rng.SetStream(hasher.HashBytes(cell.Bytes()))
		feature := make(geometry.RealPoint, len(cell))
		for d := range feature {
			feature[d] = float64(cell[d]) + mathx.F64FromMantissa(rng.NextU64(), 0, 1)
		}
		dists = append(dists, feature.Sub(p).Magnitude(metric))
	}
	first, second := math.Inf(1), math.Inf(1)
	for _, d := range dists {
		if d < first {
			first, second = d, first
		} else if d < second {
			second = d
		}
	}
	return first, second
}

func TestWorley_ValuePaintInUnitRange(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		for _, m := range testMetrics {
			n := NewWorley(17, m, PaintValue)
			for _, p := range samplePoints(dim, 100, 4) {
				if v := n.ValueAt(p); v < 0 || v > 1 {
					t.Fatalf("dim %d %T: ValueAt(%v)=%v", dim, m, p, v)
				}
			}
		}
	}
}

func TestWorley_ValueConstantNearFeature(t *testing.T) {
	n := NewWorley(5, geometry.Euclidean{}, PaintValue)
	p := geometry.NewRealPoint(3.5, -2.5)
	q := p.AddScalar(1e-7)
	if n.ValueAt(p) != n.ValueAt(q) {
		t.Fatalf("value paint changed over a tiny step")
	}
}

// PaintDistance keeps the raw nearest distance rather than the normalized
// gap between the two nearest features; PaintDistanceGap exposes the latter.
func TestWorley_DistancePaintIsRawNearestDistance(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		for _, m := range testMetrics {
			raw := NewWorley(23, m, PaintDistance)
			gap := NewWorley(23, m, PaintDistanceGap)
			for _, p := range samplePoints(dim, 60, 8) {
				first, second := bruteNearest(23, m, p)
				if got := raw.ValueAt(p); got != first {
					t.Fatalf("dim %d %T: distance=%v want %v", dim, m, got, first)
				}
				want := mathx.Clamp01((second - first) / m.DiagonalMagnitude(dim))
				if got := gap.ValueAt(p); math.Abs(got-want) > 1e-12 {
					t.Fatalf("dim %d %T: gap=%v want %v", dim, m, got, want)
				}
			}
		}
	}
}

func TestWorley_DistanceGapInUnitRange(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		n := NewWorley(31, geometry.Euclidean{}, PaintDistanceGap)
		for _, p := range samplePoints(dim, 100, 12) {
			if v := n.ValueAt(p); v < 0 || v > 1 {
				t.Fatalf("dim %d: gap=%v", dim, v)
			}
		}
	}
}

func TestWorley_ConcurrentMatchesSerial(t *testing.T) {
	n := NewWorley(77, geometry.Euclidean{}, PaintValue)
	points := samplePoints(3, 256, 21)

	serial := make([]float64, len(points))
	for i, p := range points {
		serial[i] = n.ValueAt(p)
	}

	parallel := make([]float64, len(points))
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			// walk backwards so workers overlap in different orders
			for i := len(points) - 1 - w; i >= 0; i -= 8 {
				parallel[i] = n.ValueAt(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	for i := range points {
		if serial[i] != parallel[i] {
			t.Fatalf("point %d: serial %v parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestParsePaintMethod(t *testing.T) {
	for _, m := range []PaintMethod{PaintValue, PaintDistance, PaintDistanceGap} {
		got, err := ParsePaintMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParsePaintMethod(%q)=%v,%v", m.String(), got, err)
		}
	}
	if _, err := ParsePaintMethod("nearest"); err == nil {
		t.Fatalf("expected error")
	}
}
