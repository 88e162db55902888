// Package field samples a noise graph on a 2D grid, caching values in 16x16
// chunks.
package field

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/noise"
)

const ChunkSize = 16

type ChunkKey struct {
	CX int
	CZ int
}

// Chunk holds the samples of one 16x16 block of grid cells. Chunks are not
// modified once a Store has published them.
type Chunk struct {
	CX, CZ int
	Values []float64 // len = 16*16, x fastest

	hash  [32]byte
	dirty bool
}

func (c *Chunk) index(x, z int) int {
	return x + z*ChunkSize
}

func (c *Chunk) Get(x, z int) float64 {
	return c.Values[c.index(x, z)]
}

// Digest is the SHA-256 of the little-endian bits of every sample.
func (c *Chunk) Digest() [32]byte {
	if c.dirty || c.hash == ([32]byte{}) {
		h := sha256.New()
		var tmp [8]byte
		for _, v := range c.Values {
			binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
			h.Write(tmp[:])
		}
		copy(c.hash[:], h.Sum(nil))
		c.dirty = false
	}
	return c.hash
}

// Plane maps grid cell (x, z) to the point origin + x*step on axis XAxis and
// z*step on axis ZAxis. ZAxis < 0 ignores z, for one-dimensional graphs.
type Plane struct {
	Origin geometry.RealPoint
	Step   float64
	XAxis  int
	ZAxis  int
}

// DefaultPlane samples the first two axes at unit spacing from the origin.
func DefaultPlane(dim int) Plane {
	z := 1
	if dim < 2 {
		z = -1
	}
	return Plane{Origin: geometry.RealOrigin(dim), Step: 1, XAxis: 0, ZAxis: z}
}

func (p Plane) Validate() error {
	dim := p.Origin.Dim()
	if dim < 1 {
		return fmt.Errorf("plane origin must not be empty")
	}
	if !(p.Step > 0) || math.IsInf(p.Step, 0) {
		return fmt.Errorf("plane step must be > 0 (got %v)", p.Step)
	}
	if p.XAxis < 0 || p.XAxis >= dim {
		return fmt.Errorf("plane x axis %d out of range [0, %d)", p.XAxis, dim)
	}
	if p.ZAxis >= dim {
		return fmt.Errorf("plane z axis %d out of range [0, %d)", p.ZAxis, dim)
	}
	if p.ZAxis == p.XAxis {
		return fmt.Errorf("plane axes must differ")
	}
	return nil
}

func (p Plane) Point(x, z int) geometry.RealPoint {
	out := p.Origin.Clone()
	out[p.XAxis] += float64(x) * p.Step
	if p.ZAxis >= 0 {
		out[p.ZAxis] += float64(z) * p.Step
	}
	return out
}

// Store caches chunks of a node sampled over a plane. It is safe for
// concurrent use; nodes are evaluated outside the lock.
type Store struct {
	Node  noise.Node
	Plane Plane

	mu     sync.Mutex
	chunks map[ChunkKey]*Chunk
}

func NewStore(node noise.Node, plane Plane) (*Store, error) {
	if node == nil {
		return nil, fmt.Errorf("field: node must not be nil")
	}
	if err := plane.Validate(); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	return &Store{
		Node:   node,
		Plane:  plane,
		chunks: map[ChunkKey]*Chunk{},
	}, nil
}
