package random

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/aead/chacha20/chacha"

	"github.com/rgaf/demiurge/internal/mathx"
)

const (
	rounds     = 8
	blockWords = 16
	blockBytes = blockWords * 4

	pcgMul uint64 = 6364136223846793005
	pcgInc uint64 = 11634580027462260723
)

var zeroBlock [blockBytes]byte

// Stateful is a seekable generator over the ChaCha8 keystream. The key
// comes from the seed; the stream selects one of 2^64 independent sequences
// and the word position addresses 32-bit words inside it. Repositioning only
// depends on the values given, never on what was drawn before.
//
// A Stateful is not safe for concurrent use. Copying a Stateful and then
// calling SetWordPos or SetStream on the copy yields an independent generator.
type Stateful struct {
	key    [chacha.KeySize]byte
	stream uint64

	// block is the keystream block holding the next word; idx is the word
	// inside it. idx == blockWords means block is used up.
	block  uint64
	idx    int
	loaded bool
	buf    [blockWords]uint32

	cipher *chacha.Cipher
	next   uint64 // block the cipher produces on its next call
}

// NewStateful expands seed into a 256-bit key with PCG32, one output word
// per four key bytes.
func NewStateful(seed uint64) *Stateful {
	r := &Stateful{}
	state := seed
	for i := 0; i < len(r.key); i += 4 {
		state = state*pcgMul + pcgInc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(r.key[i:], bits.RotateLeft32(xorshifted, -rot))
	}
	return r
}

func (r *Stateful) Stream() uint64 {
	return r.stream
}

// SetStream switches to another stream, keeping the word position.
func (r *Stateful) SetStream(stream uint64) {
	r.stream = stream
	r.loaded = false
	r.cipher = nil
}

// WordPos is the index of the next 32-bit word to be drawn.
func (r *Stateful) WordPos() uint64 {
	return r.block*blockWords + uint64(r.idx)
}

func (r *Stateful) SetWordPos(pos uint64) {
	r.block = pos / blockWords
	r.idx = int(pos % blockWords)
	r.loaded = false
	r.cipher = nil
}

func (r *Stateful) NextU32() uint32 {
	if r.idx >= blockWords {
		r.block++
		r.idx = 0
		r.loaded = false
	}
	if !r.loaded {
		r.refill()
	}
	w := r.buf[r.idx]
	r.idx++
	return w
}

// NextU64 draws two words, low half first.
func (r *Stateful) NextU64() uint64 {
	lo := r.NextU32()
	hi := r.NextU32()
	return uint64(hi)<<32 | uint64(lo)
}

// U32 returns a uniform value in [0, n).
func (r *Stateful) U32(n uint32) uint32 {
	max := n - 1
	mask := uint32(math.MaxUint32) >> bits.LeadingZeros32(max|1)
	for {
		if v := r.NextU32() & mask; v <= max {
			return v
		}
	}
}

// U64 returns a uniform value in [0, n).
func (r *Stateful) U64(n uint64) uint64 {
	max := n - 1
	mask := uint64(math.MaxUint64) >> bits.LeadingZeros64(max|1)
	for {
		if v := r.NextU64() & mask; v <= max {
			return v
		}
	}
}

// F32 returns a uniform value in [0, 1).
func (r *Stateful) F32() float32 {
	return mathx.F32FromMantissa(r.NextU32(), 0, 1)
}

// F64 returns a uniform value in [0, 1).
func (r *Stateful) F64() float64 {
	return mathx.F64FromMantissa(r.NextU64(), 0, 1)
}

// RoundF32 rounds v away from zero with probability equal to its fractional
// magnitude and toward zero otherwise.
func (r *Stateful) RoundF32(v float32) int32 {
	t := math.Trunc(float64(v))
	fract := float32(math.Abs(float64(v) - t))
	if r.F32() < fract {
		if math.Signbit(float64(v)) {
			return int32(t) - 1
		}
		return int32(t) + 1
	}
	return int32(t)
}

func (r *Stateful) RoundF64(v float64) int32 {
	t := math.Trunc(v)
	fract := math.Abs(v - t)
	if r.F64() < fract {
		if math.Signbit(v) {
			return int32(t) - 1
		}
		return int32(t) + 1
	}
	return int32(t)
}

func (r *Stateful) CoinFlip() bool {
	return r.NextU32()&1 > 0
}

// XChanceInY is true with probability x/y.
func (r *Stateful) XChanceInY(x, y uint32) bool {
	return r.U32(y) < x
}

// Roll sums num rolls of a die with the given number of sides.
func (r *Stateful) Roll(num, sides uint32) int32 {
	var total int32
	for i := uint32(0); i < num; i++ {
		total += int32(r.U32(sides) + 1)
	}
	return total
}

// refill loads r.block into buf. The ChaCha state words 12..15 are the
// 64-bit block counter followed by the 64-bit stream.
func (r *Stateful) refill() {
	if r.cipher == nil {
		var nonce [chacha.NonceSize]byte
		binary.LittleEndian.PutUint64(nonce[:], r.stream)
		c, err := chacha.NewCipher(nonce[:], r.key[:], rounds)
		if err != nil {
			panic("impossible error: " + err.Error())
		}
		r.cipher = c
		r.next = 0
	}
	if r.next != r.block {
		r.cipher.SetCounter(r.block)
	}
	var raw [blockBytes]byte
	r.cipher.XORKeyStream(raw[:], zeroBlock[:])
	r.next = r.block + 1
	for i := range r.buf {
		r.buf[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	r.loaded = true
}
