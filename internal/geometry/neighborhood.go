package geometry

// LatticeNeighborhood walks the 3^D lattice points whose coordinates differ
// from an origin by at most one. The first coordinate varies fastest. Each
// call to Neighbors or NeighborsAndSelf starts a fresh walk.
type LatticeNeighborhood struct {
	origin      LatticePoint
	includeSelf bool
	index       int
	count       int
}

func NewLatticeNeighborhood(origin LatticePoint, includeSelf bool) *LatticeNeighborhood {
	count := 1
	for range origin {
		count *= 3
	}
	return &LatticeNeighborhood{origin: origin, includeSelf: includeSelf, count: count}
}

// Len is the total number of points the walk yields.
func (n *LatticeNeighborhood) Len() int {
	if n.includeSelf {
		return n.count
	}
	return n.count - 1
}

func (n *LatticeNeighborhood) Next() (LatticePoint, bool) {
	if !n.includeSelf && n.index == n.count/2 {
		n.index++
	}
	if n.index >= n.count {
		return nil, false
	}
	out := make(LatticePoint, len(n.origin))
	divisor := 1
	for d := range out {
		modulus := divisor * 3
		out[d] = n.origin[d] + int32((n.index%modulus)/divisor-1)
		divisor = modulus
	}
	n.index++
	return out, true
}

// Collect drains the remaining points.
func (n *LatticeNeighborhood) Collect() []LatticePoint {
	out := make([]LatticePoint, 0, n.Len())
	for p, ok := n.Next(); ok; p, ok = n.Next() {
		out = append(out, p)
	}
	return out
}

// VertexNeighborhood walks the 2^D corners of the unit hypercube containing a
// point. Bit d of the walk index selects the upper corner on dimension d.
type VertexNeighborhood struct {
	origin RealPoint
	index  int
	count  int
}

func NewVertexNeighborhood(p RealPoint) *VertexNeighborhood {
	return &VertexNeighborhood{origin: p.Floor(), count: 1 << len(p)}
}

func (n *VertexNeighborhood) Len() int {
	return n.count
}

func (n *VertexNeighborhood) Next() (RealPoint, bool) {
	if n.index >= n.count {
		return nil, false
	}
	out := n.origin.Clone()
	for d := range out {
		if n.index&(1<<d) != 0 {
			out[d]++
		}
	}
	n.index++
	return out, true
}

func (n *VertexNeighborhood) Collect() []RealPoint {
	out := make([]RealPoint, 0, n.count)
	for p, ok := n.Next(); ok; p, ok = n.Next() {
		out = append(out, p)
	}
	return out
}
