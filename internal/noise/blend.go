package noise

import (
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
)

// Lerp blends lhs toward rhs by the value of bias at the same point.
type Lerp struct {
	bias, lhs, rhs Node
}

func NewLerp(bias, lhs, rhs Node) *Lerp {
	return &Lerp{bias: bias, lhs: lhs, rhs: rhs}
}

func (n *Lerp) ValueAt(p geometry.RealPoint) float64 {
	return mathx.Lerp(n.bias.ValueAt(p), n.lhs.ValueAt(p), n.rhs.ValueAt(p))
}

type Multiply struct {
	lhs, rhs Node
}

func NewMultiply(lhs, rhs Node) *Multiply {
	return &Multiply{lhs: lhs, rhs: rhs}
}

func (n *Multiply) ValueAt(p geometry.RealPoint) float64 {
	return n.lhs.ValueAt(p) * n.rhs.ValueAt(p)
}

// Screen is the inverse of multiplying the inverted inputs; it only brightens.
type Screen struct {
	lhs, rhs Node
}

func NewScreen(lhs, rhs Node) *Screen {
	return &Screen{lhs: lhs, rhs: rhs}
}

func (n *Screen) ValueAt(p geometry.RealPoint) float64 {
	l, r := n.lhs.ValueAt(p), n.rhs.ValueAt(p)
	return 1 - (1-l)*(1-r)
}

// Overlay multiplies where lhs is dark and screens where it is light.
type Overlay struct {
	lhs, rhs Node
}

func NewOverlay(lhs, rhs Node) *Overlay {
	return &Overlay{lhs: lhs, rhs: rhs}
}

func (n *Overlay) ValueAt(p geometry.RealPoint) float64 {
	l, r := n.lhs.ValueAt(p), n.rhs.ValueAt(p)
	if l < 0.5 {
		return 2 * l * r
	}
	return math.FMA((1-l)*(1-r), -2, 1)
}

// SoftLight darkens or lightens lhs depending on rhs, without the hard edge
// of Overlay.
type SoftLight struct {
	lhs, rhs Node
}

func NewSoftLight(lhs, rhs Node) *SoftLight {
	return &SoftLight{lhs: lhs, rhs: rhs}
}

func (n *SoftLight) ValueAt(p geometry.RealPoint) float64 {
	l, r := n.lhs.ValueAt(p), n.rhs.ValueAt(p)
	if r <= 0.5 {
		return math.FMA(math.FMA(r, -2, 1), -l*(1-l), l)
	}
	var g float64
	if l <= 0.25 {
		g = math.FMA(math.FMA(l, 16, -12), l, 4) * l
	} else {
		g = math.Sqrt(l)
	}
	return math.FMA(math.FMA(r, 2, -1), g-l, l)
}
