package noise

import (
	"math"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/mathx"
)

// Invert flips a [0, 1] source.
type Invert struct {
	source Node
}

func NewInvert(source Node) *Invert {
	return &Invert{source: source}
}

func (n *Invert) ValueAt(p geometry.RealPoint) float64 {
	return 1 - n.source.ValueAt(p)
}

// Knead folds a [0, 1] source around its midpoint: 0.5 maps to 0 and both
// ends map to 1.
type Knead struct {
	source Node
}

func NewKnead(source Node) *Knead {
	return &Knead{source: source}
}

func (n *Knead) ValueAt(p geometry.RealPoint) float64 {
	return math.Abs(mathx.UnitToNegUnit(n.source.ValueAt(p)))
}

// Sigmoid runs a [0, 1] source through mathx.Sigmoid.
type Sigmoid struct {
	source Node
	beta   float64
}

func NewSigmoid(source Node, beta float64) *Sigmoid {
	return &Sigmoid{source: source, beta: beta}
}

func (n *Sigmoid) ValueAt(p geometry.RealPoint) float64 {
	return mathx.Sigmoid(n.beta, n.source.ValueAt(p))
}

// Transform samples its source at a linearly mapped point.
type Transform struct {
	source Node
	m      geometry.LinearMap
}

func NewTransform(source Node, m geometry.LinearMap) *Transform {
	return &Transform{source: source, m: m}
}

func (n *Transform) ValueAt(p geometry.RealPoint) float64 {
	return n.source.ValueAt(n.m.Apply(p))
}
