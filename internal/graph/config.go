// Package graph loads noise graphs described in YAML and builds them into
// noise.Node trees.
package graph

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/noise"
	"github.com/rgaf/demiurge/internal/random"
)

type Config struct {
	Dimension int `yaml:"dimension"`
	// Seed is parsed with random.ParseSeed. Empty means a seed derived from
	// the current time.
	Seed SeedText  `yaml:"seed,omitempty"`
	Root *NodeSpec `yaml:"root"`
}

// SeedText holds a seed as written. YAML integers in any notation (0x10,
// 0o20, 1_000) are stored in decimal so they seed as the number they spell;
// strings are kept verbatim and hashed.
type SeedText string

func (s *SeedText) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("seed must be an integer or a string (line %d)", n.Line)
	}
	switch n.ShortTag() {
	case "!!str":
		*s = SeedText(n.Value)
	case "!!int":
		var u uint64
		if err := n.Decode(&u); err == nil {
			*s = SeedText(strconv.FormatUint(u, 10))
			return nil
		}
		var i int64
		if err := n.Decode(&i); err != nil {
			return fmt.Errorf("seed %q: %w", n.Value, err)
		}
		*s = SeedText(strconv.FormatInt(i, 10))
	default:
		return fmt.Errorf("seed must be an integer or a string (got %s %q on line %d)", n.ShortTag(), n.Value, n.Line)
	}
	return nil
}

type NodeSpec struct {
	Type       string `yaml:"type"`
	SeedOffset int64  `yaml:"seed_offset,omitempty"`

	Metric string `yaml:"metric,omitempty"`
	P      int32  `yaml:"p,omitempty"`
	Q      int32  `yaml:"q,omitempty"`
	Paint  string `yaml:"paint,omitempty"`

	Min   float64 `yaml:"min,omitempty"`
	Max   float64 `yaml:"max,omitempty"`
	Value float64 `yaml:"value,omitempty"`

	Frequency   float64 `yaml:"frequency,omitempty"`
	Octaves     int     `yaml:"octaves,omitempty"`
	Persistence float64 `yaml:"persistence,omitempty"`
	Lacunarity  float64 `yaml:"lacunarity,omitempty"`
	Beta        float64 `yaml:"beta,omitempty"`

	Matrix [][]float64 `yaml:"matrix,omitempty"`

	Source *NodeSpec `yaml:"source,omitempty"`
	Lhs    *NodeSpec `yaml:"lhs,omitempty"`
	Rhs    *NodeSpec `yaml:"rhs,omitempty"`
	Bias   *NodeSpec `yaml:"bias,omitempty"`
}

// Load reads a graph file, checks it against the embedded schema, fills
// defaults and validates it.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := validateSchema(b); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolveSeed returns the root seed of the graph.
func (c Config) ResolveSeed() uint64 {
	v := strings.TrimSpace(string(c.Seed))
	if v == "" {
		return random.CurrentSeed()
	}
	return random.ParseSeed(v)
}

// Normalize fills unset fields. Zero is treated as unset, so persistence,
// lacunarity and frequency cannot be configured as exactly 0.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Root.walk(func(n *NodeSpec) {
		n.Type = strings.ToLower(strings.TrimSpace(n.Type))
		n.Metric = strings.ToLower(strings.TrimSpace(n.Metric))
		n.Paint = strings.ToLower(strings.TrimSpace(n.Paint))
		if n.Metric == "" {
			n.Metric = "euclidean"
		}
		if n.Paint == "" {
			n.Paint = "value"
		}
		if n.Octaves == 0 {
			n.Octaves = 1
		}
		if n.Persistence == 0 {
			n.Persistence = 0.5
		}
		if n.Lacunarity == 0 {
			n.Lacunarity = 2
		}
		if n.Frequency == 0 {
			n.Frequency = 1
		}
		if n.Min == 0 && n.Max == 0 {
			n.Max = 1
		}
	})
}

func (c Config) Validate() error {
	if c.Dimension < 1 {
		return fmt.Errorf("dimension must be >= 1")
	}
	if c.Root == nil {
		return fmt.Errorf("root must not be empty")
	}
	return c.Root.validate("root", c.Dimension)
}

func (n *NodeSpec) walk(f func(*NodeSpec)) {
	if n == nil {
		return
	}
	f(n)
	n.Source.walk(f)
	n.Lhs.walk(f)
	n.Rhs.walk(f)
	n.Bias.walk(f)
}

// clone deep-copies the subtree rooted at n.
func (n *NodeSpec) clone() *NodeSpec {
	if n == nil {
		return nil
	}
	c := *n
	if n.Matrix != nil {
		c.Matrix = make([][]float64, len(n.Matrix))
		for i, row := range n.Matrix {
			c.Matrix[i] = append([]float64(nil), row...)
		}
	}
	c.Source = n.Source.clone()
	c.Lhs = n.Lhs.clone()
	c.Rhs = n.Rhs.clone()
	c.Bias = n.Bias.clone()
	return &c
}

func (n *NodeSpec) validate(path string, dim int) error {
	if n == nil {
		return fmt.Errorf("%s must not be empty", path)
	}
	switch n.Type {
	case "perlin", "static", "tile", "const":
	case "worley", "hypersphere":
		if _, err := n.metric(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	case "harmonic":
		if n.Octaves < 1 {
			return fmt.Errorf("%s octaves must be >= 1", path)
		}
		return n.Source.validate(path+".source", dim)
	case "invert", "knead", "sigmoid":
		return n.Source.validate(path+".source", dim)
	case "transform":
		if err := validateMatrix(n.Matrix, dim); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return n.Source.validate(path+".source", dim)
	case "lerp":
		if err := n.Bias.validate(path+".bias", dim); err != nil {
			return err
		}
		fallthrough
	case "multiply", "screen", "overlay", "soft_light":
		if err := n.Lhs.validate(path+".lhs", dim); err != nil {
			return err
		}
		return n.Rhs.validate(path+".rhs", dim)
	default:
		return fmt.Errorf("%s: unknown node type %q", path, n.Type)
	}
	if n.Type == "worley" {
		if _, err := noise.ParsePaintMethod(n.Paint); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if n.Type == "static" && !(n.Min < n.Max) {
		return fmt.Errorf("%s min must be < max (got %v, %v)", path, n.Min, n.Max)
	}
	return nil
}

func (n *NodeSpec) metric() (geometry.Metric, error) {
	switch n.Metric {
	case "chebyshev":
		return geometry.Chebyshev{}, nil
	case "euclidean":
		return geometry.Euclidean{}, nil
	case "manhattan":
		return geometry.Manhattan{}, nil
	case "minkowski":
		if n.P == 0 || n.Q == 0 {
			return nil, fmt.Errorf("minkowski p and q must be non-zero")
		}
		return geometry.Minkowski{P: n.P, Q: n.Q}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", n.Metric)
	}
}

func validateMatrix(rows [][]float64, dim int) error {
	if len(rows) != dim {
		return fmt.Errorf("matrix must have %d rows (got %d)", dim, len(rows))
	}
	points := make([]geometry.RealPoint, dim)
	for i, r := range rows {
		if len(r) != dim {
			return fmt.Errorf("matrix row %d must have %d columns (got %d)", i, dim, len(r))
		}
		points[i] = geometry.RealPoint(r)
	}
	if det := geometry.NewLinearMap(points...).Det(); det == 0 || math.IsNaN(det) {
		return fmt.Errorf("matrix must be invertible")
	}
	return nil
}
