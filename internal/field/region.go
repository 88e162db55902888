package field

import (
	"context"
	"crypto/sha256"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rgaf/demiurge/internal/mathx"
)

// Region returns the w*h samples starting at (x0, z0), row-major by z.
// Missing chunks are generated by up to workers goroutines; workers <= 0
// means one.
func (s *Store) Region(ctx context.Context, x0, z0, w, h, workers int) ([]float64, error) {
	if _, err := s.ensure(ctx, x0, z0, w, h, workers); err != nil {
		return nil, err
	}

	out := make([]float64, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			out[z*w+x] = s.ValueAt(x0+x, z0+z)
		}
	}
	return out, nil
}

// RegionDigest hashes the digests of every chunk overlapping the region in
// key order. Two stores over the same node and plane agree on it no matter
// which chunks they generated first.
func (s *Store) RegionDigest(ctx context.Context, x0, z0, w, h, workers int) ([32]byte, error) {
	keys, err := s.ensure(ctx, x0, z0, w, h, workers)
	if err != nil {
		return [32]byte{}, err
	}
	sum := sha256.New()
	for _, k := range keys {
		d := s.GetOrGenChunk(k.CX, k.CZ).Digest()
		sum.Write(d[:])
	}
	var out [32]byte
	copy(out[:], sum.Sum(nil))
	return out, nil
}

// ensure generates every chunk overlapping the region and returns their keys
// in sorted order.
func (s *Store) ensure(ctx context.Context, x0, z0, w, h, workers int) ([]ChunkKey, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("field: region size must be positive (got %dx%d)", w, h)
	}
	if workers <= 0 {
		workers = 1
	}

	cx0, cx1 := mathx.FloorDiv(x0, ChunkSize), mathx.FloorDiv(x0+w-1, ChunkSize)
	cz0, cz1 := mathx.FloorDiv(z0, ChunkSize), mathx.FloorDiv(z0+h-1, ChunkSize)
	keys := make([]ChunkKey, 0, (cx1-cx0+1)*(cz1-cz0+1))
	for cx := cx0; cx <= cx1; cx++ {
		for cz := cz0; cz <= cz1; cz++ {
			keys = append(keys, ChunkKey{CX: cx, CZ: cz})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, k := range keys {
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.GetOrGenChunk(k.CX, k.CZ)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("field: region: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("field: region: %w", err)
	}
	return keys, nil
}
