// Package random provides the deterministic randomness every generator is
// built on: seeded xxHash64 hashing and a seekable ChaCha bit generator.
// Both must stay bit-for-bit stable; changing a constant here changes every
// field generated from a seed.
package random

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

const (
	prime1 uint64 = 0x9E37_79B1_85EB_CA87
	prime2 uint64 = 0xC2B2_AE3D_27D4_EB4F
	prime3 uint64 = 0x1656_67B1_9E37_79F9
	prime4 uint64 = 0x85EB_CA77_C2B2_AE63
	prime5 uint64 = 0x27D4_EB2F_1656_67C5
)

// Stateless hashes inputs under a fixed seed. It holds no mutable state.
type Stateless struct {
	seed uint64
}

func NewStateless(seed uint64) Stateless {
	return Stateless{seed: seed}
}

func (r Stateless) Seed() uint64 {
	return r.seed
}

// HashBytes is seeded xxHash64 of b.
func (r Stateless) HashBytes(b []byte) uint64 {
	d := xxhash.NewWithSeed(r.seed)
	_, _ = d.Write(b)
	return d.Sum64()
}

// Hash1U64 equals HashBytes of the 8 little-endian bytes of x.
func (r Stateless) Hash1U64(x uint64) uint64 {
	h := r.prepare(8)
	h = mixU64(h, x)
	return finalize(h)
}

// Hash2U64 equals HashBytes of x then y, little-endian.
func (r Stateless) Hash2U64(x, y uint64) uint64 {
	h := r.prepare(16)
	h = mixU64(h, x)
	h = mixU64(h, y)
	return finalize(h)
}

// Hash3U64 equals HashBytes of x, y then z, little-endian.
func (r Stateless) Hash3U64(x, y, z uint64) uint64 {
	h := r.prepare(24)
	h = mixU64(h, x)
	h = mixU64(h, y)
	h = mixU64(h, z)
	return finalize(h)
}

// prepare is the short-input xxHash64 accumulator start.
func (r Stateless) prepare(n uint64) uint64 {
	return r.seed + prime5 + n
}

func mixU64(h, lane uint64) uint64 {
	k := bits.RotateLeft64(lane*prime2, 31) * prime1
	return bits.RotateLeft64(h^k, 27)*prime1 + prime4
}

func finalize(h uint64) uint64 {
	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}
