package field

import (
	"sort"

	"github.com/rgaf/demiurge/internal/mathx"
)

func (s *Store) LoadedChunkKeys() []ChunkKey {
	s.mu.Lock()
	keys := make([]ChunkKey, 0, len(s.chunks))
	for k := range s.chunks {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sortKeys(keys)
	return keys
}

func sortKeys(keys []ChunkKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		return keys[i].CZ < keys[j].CZ
	})
}

func (s *Store) ValueAt(x, z int) float64 {
	cx := mathx.FloorDiv(x, ChunkSize)
	cz := mathx.FloorDiv(z, ChunkSize)
	lx := mathx.Mod(x, ChunkSize)
	lz := mathx.Mod(z, ChunkSize)
	return s.GetOrGenChunk(cx, cz).Get(lx, lz)
}

func (s *Store) GetOrGenChunk(cx, cz int) *Chunk {
	k := ChunkKey{CX: cx, CZ: cz}
	s.mu.Lock()
	ch, ok := s.chunks[k]
	s.mu.Unlock()
	if ok {
		return ch
	}

	ch = &Chunk{
		CX:     cx,
		CZ:     cz,
		Values: make([]float64, ChunkSize*ChunkSize),
	}
	s.GenerateChunk(ch)
	ch.dirty = true
	_ = ch.Digest()

	s.mu.Lock()
	defer s.mu.Unlock()
	// another goroutine may have generated the same chunk meanwhile
	if prev, ok := s.chunks[k]; ok {
		return prev
	}
	s.chunks[k] = ch
	return ch
}

func (s *Store) GenerateChunk(ch *Chunk) {
	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			wx := ch.CX*ChunkSize + x
			wz := ch.CZ*ChunkSize + z
			ch.Values[ch.index(x, z)] = s.Node.ValueAt(s.Plane.Point(wx, wz))
		}
	}
}
