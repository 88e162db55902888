package random

import (
	"strconv"
	"time"
)

// textSeedKey keys the hash used for seeds that are not integers.
const textSeedKey uint64 = 0x5712_5EED_DE7E_C7ED

// ParseSeed reads s as a signed, then unsigned, 64-bit integer. Any other
// text is hashed, so every string names a reproducible seed.
func ParseSeed(s string) uint64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint64(v)
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return NewStateless(textSeedKey).HashBytes([]byte(s))
}

// SeedFromTime hashes the sub-second part of t keyed by its Unix seconds.
func SeedFromTime(t time.Time) uint64 {
	return NewStateless(uint64(t.Unix())).Hash1U64(uint64(t.Nanosecond()))
}

func CurrentSeed() uint64 {
	return SeedFromTime(time.Now())
}
