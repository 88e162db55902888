package noise

import (
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
)

// Const returns the same value everywhere.
type Const float64

func (c Const) ValueAt(geometry.RealPoint) float64 {
	return float64(c)
}

// Hypersphere draws concentric shells around the origin, one per unit of
// distance after scaling by frequency. Values peak on a shell and fall off
// halfway between two shells.
type Hypersphere struct {
	frequency float64
	metric    geometry.Metric
}

func NewHypersphere(frequency float64, metric geometry.Metric) *Hypersphere {
	return &Hypersphere{frequency: frequency, metric: metric}
}

func (n *Hypersphere) ValueAt(p geometry.RealPoint) float64 {
	d := p.MulScalar(n.frequency).Magnitude(n.metric)
	inner := d - math.Floor(d)
	nearest := math.Min(inner, 1-inner)
	return mathx.Sigmoid(-1.2, math.FMA(nearest, -2, 1))
}
