// Package noise evaluates seedable scalar fields over N-dimensional space.
//
// A Node maps a point to a float64. Leaves (Perlin, Worley, Static, Tile,
// Const, Hypersphere) own their seeds; combinators wrap one to three child
// nodes. Nodes are immutable after construction, so a graph can be evaluated
// from many goroutines at once and always returns the same value for the same
// point.
package noise

import (
	"fmt"

	"github.com/rgaf/demiurge/internal/geometry"
)

type Node interface {
	ValueAt(p geometry.RealPoint) float64
}

// NodeFunc adapts a plain function to the Node interface.
type NodeFunc func(p geometry.RealPoint) float64

func (f NodeFunc) ValueAt(p geometry.RealPoint) float64 {
	return f(p)
}

func mustDim(node string, want, got int) {
	if want != got {
		panic(fmt.Sprintf("noise: %s built for %d dimensions, got %d", node, want, got))
	}
}
