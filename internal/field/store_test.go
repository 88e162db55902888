package field

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rgaf/demiurge/internal/geometry"
	"github.com/rgaf/demiurge/internal/noise"
)

// coordNode encodes the sampled point so tests can check the plane mapping.
var coordNode = noise.NodeFunc(func(p geometry.RealPoint) float64 {
	return p[0]*1000 + p[1]
})

func TestPlane_Point(t *testing.T) {
	p := Plane{Origin: geometry.NewRealPoint(1, 2, 3), Step: 0.5, XAxis: 2, ZAxis: 0}
	got := p.Point(4, -2)
	want := geometry.NewRealPoint(0, 2, 5)
	if !got.Equal(want) {
		t.Fatalf("Point=%v want %v", got, want)
	}
	if !p.Origin.Equal(geometry.NewRealPoint(1, 2, 3)) {
		t.Fatalf("Point modified the origin")
	}

	line := DefaultPlane(1)
	if got := line.Point(3, 99); !got.Equal(geometry.NewRealPoint(3)) {
		t.Fatalf("1D plane Point=%v", got)
	}
}

func TestPlane_Validate(t *testing.T) {
	bad := []Plane{
		{Origin: geometry.RealOrigin(2), Step: 0, XAxis: 0, ZAxis: 1},
		{Origin: geometry.RealOrigin(2), Step: 1, XAxis: 0, ZAxis: 0},
		{Origin: geometry.RealOrigin(2), Step: 1, XAxis: 2, ZAxis: 1},
		{Origin: geometry.RealOrigin(2), Step: math.NaN(), XAxis: 0, ZAxis: 1},
		{Origin: nil, Step: 1},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("plane %d: expected error", i)
		}
	}
	if err := DefaultPlane(3).Validate(); err != nil {
		t.Fatalf("default plane: %v", err)
	}
}

func TestStore_ValueAtNegativeCoordinates(t *testing.T) {
	s, err := NewStore(coordNode, DefaultPlane(2))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, c := range [][2]int{{0, 0}, {-1, -1}, {-17, 5}, {15, 16}, {33, -40}} {
		want := float64(c[0])*1000 + float64(c[1])
		if got := s.ValueAt(c[0], c[1]); got != want {
			t.Fatalf("ValueAt(%d,%d)=%v want %v", c[0], c[1], got, want)
		}
	}
	keys := s.LoadedChunkKeys()
	for i := 1; i < len(keys); i++ {
		a, b := keys[i-1], keys[i]
		if a.CX > b.CX || (a.CX == b.CX && a.CZ >= b.CZ) {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
	if keys[0] != (ChunkKey{CX: -2, CZ: 0}) {
		t.Fatalf("first key=%v", keys[0])
	}
}

func TestStore_RegionRowMajor(t *testing.T) {
	s, err := NewStore(coordNode, DefaultPlane(2))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	const x0, z0, w, h = -20, 7, 37, 19
	got, err := s.Region(context.Background(), x0, z0, w, h, 4)
	if err != nil {
		t.Fatalf("region: %v", err)
	}
	if len(got) != w*h {
		t.Fatalf("len=%d", len(got))
	}
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			want := float64(x0+x)*1000 + float64(z0+z)
			if got[z*w+x] != want {
				t.Fatalf("sample (%d,%d)=%v want %v", x, z, got[z*w+x], want)
			}
		}
	}
	// x spans chunks -2..1, z spans 0..1
	if n := len(s.LoadedChunkKeys()); n != 8 {
		t.Fatalf("loaded %d chunks want 8", n)
	}
}

func TestStore_RegionDigestIndependentOfOrder(t *testing.T) {
	node := noise.NewPerlin(2, 9)
	plane := Plane{Origin: geometry.NewRealPoint(0.5, 0.25), Step: 0.1, XAxis: 0, ZAxis: 1}
	ctx := context.Background()

	a, _ := NewStore(node, plane)
	b, _ := NewStore(node, plane)
	// b sees chunks in a different order and some outside the region first.
	b.GetOrGenChunk(3, 3)
	b.GetOrGenChunk(1, 0)
	b.ValueAt(-5, -5)

	da, err := a.RegionDigest(ctx, -16, -16, 64, 48, 1)
	if err != nil {
		t.Fatalf("digest a: %v", err)
	}
	db, err := b.RegionDigest(ctx, -16, -16, 64, 48, 8)
	if err != nil {
		t.Fatalf("digest b: %v", err)
	}
	if da != db {
		t.Fatalf("digests differ: %x vs %x", da, db)
	}

	other, _ := NewStore(noise.NewPerlin(2, 10), plane)
	dc, err := other.RegionDigest(ctx, -16, -16, 64, 48, 2)
	if err != nil {
		t.Fatalf("digest c: %v", err)
	}
	if dc == da {
		t.Fatalf("different seeds share a digest")
	}
}

func TestStore_RegionCancelled(t *testing.T) {
	s, _ := NewStore(noise.Const(0.5), DefaultPlane(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Region(ctx, 0, 0, 64, 64, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := s.Region(context.Background(), 0, 0, 0, 5, 2); err == nil {
		t.Fatalf("expected error for empty region")
	}
}

func TestNewStore_Rejects(t *testing.T) {
	if _, err := NewStore(nil, DefaultPlane(2)); err == nil {
		t.Fatalf("expected error for nil node")
	}
	if _, err := NewStore(noise.Const(0), Plane{Origin: geometry.RealOrigin(2), Step: -1, ZAxis: 1}); err == nil {
		t.Fatalf("expected error for negative step")
	}
}

func TestChunk_Digest(t *testing.T) {
	a := &Chunk{Values: make([]float64, ChunkSize*ChunkSize)}
	b := &Chunk{Values: make([]float64, ChunkSize*ChunkSize)}
	b.Values[17] = math.Copysign(0, -1)
	if a.Digest() == b.Digest() {
		t.Fatalf("digest should see the sign bit")
	}
	if a.Digest() != a.Digest() {
		t.Fatalf("digest not stable")
	}
}

func TestSummarizeAndRender(t *testing.T) {
	samples := []float64{0, 0.25, 0.5, 0.75, 1, 0.5}
	s, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.Count != 6 || s.Min != 0 || s.Max != 1 || s.Median != 0.5 || s.Mean != 0.5 {
		t.Fatalf("summary=%+v", s)
	}
	if _, err := Summarize(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}

	out := RenderASCII([]float64{0, 1, -3, 7, math.NaN(), 0.5}, 3, 2)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || lines[0] != " @ " || lines[1] != "@?=" {
		t.Fatalf("render=%q", out)
	}
}
