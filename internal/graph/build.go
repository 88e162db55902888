package graph

import (
	"fmt"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/noise"
)

// Build validates cfg and turns it into a node tree. Leaves are seeded with
// the root seed plus their seed_offset, wrapping on overflow.
func Build(cfg Config) (noise.Node, error) {
	return BuildWithSeed(cfg, cfg.ResolveSeed())
}

// BuildWithSeed is Build with an explicit root seed. cfg is not modified.
func BuildWithSeed(cfg Config, seed uint64) (noise.Node, error) {
	cfg.Root = cfg.Root.clone()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := builder{dim: cfg.Dimension, seed: seed}
	return b.build(cfg.Root)
}

type builder struct {
	dim  int
	seed uint64
}

func (b builder) build(n *NodeSpec) (noise.Node, error) {
	seed := b.seed + uint64(n.SeedOffset)
	switch n.Type {
	case "perlin":
		return noise.NewPerlin(b.dim, seed), nil
	case "worley":
		m, err := n.metric()
		if err != nil {
			return nil, err
		}
		paint, err := noise.ParsePaintMethod(n.Paint)
		if err != nil {
			return nil, err
		}
		return noise.NewWorley(seed, m, paint), nil
	case "static":
		return noise.NewStatic(seed, n.Min, n.Max), nil
	case "tile":
		return noise.NewTile(seed), nil
	case "const":
		return noise.Const(n.Value), nil
	case "hypersphere":
		m, err := n.metric()
		if err != nil {
			return nil, err
		}
		return noise.NewHypersphere(n.Frequency, m), nil
	}

	// Combinators.
	switch n.Type {
	case "harmonic", "invert", "knead", "sigmoid", "transform":
		src, err := b.build(n.Source)
		if err != nil {
			return nil, err
		}
		switch n.Type {
		case "harmonic":
			return noise.NewHarmonic(src, n.Octaves, n.Persistence, n.Lacunarity), nil
		case "invert":
			return noise.NewInvert(src), nil
		case "knead":
			return noise.NewKnead(src), nil
		case "sigmoid":
			return noise.NewSigmoid(src, n.Beta), nil
		default:
			rows := make([]geometry.RealPoint, len(n.Matrix))
			for i, r := range n.Matrix {
				rows[i] = geometry.RealPoint(r)
			}
			return noise.NewTransform(src, geometry.NewLinearMap(rows...)), nil
		}
	case "lerp", "multiply", "screen", "overlay", "soft_light":
		lhs, err := b.build(n.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := b.build(n.Rhs)
		if err != nil {
			return nil, err
		}
		switch n.Type {
		case "lerp":
			bias, err := b.build(n.Bias)
			if err != nil {
				return nil, err
			}
			return noise.NewLerp(bias, lhs, rhs), nil
		case "multiply":
			return noise.NewMultiply(lhs, rhs), nil
		case "screen":
			return noise.NewScreen(lhs, rhs), nil
		case "overlay":
			return noise.NewOverlay(lhs, rhs), nil
		default:
			return noise.NewSoftLight(lhs, rhs), nil
		}
	}
	return nil, fmt.Errorf("unknown node type %q", n.Type)
}
