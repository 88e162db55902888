package random

import (
	"testing"
	"time"
)

func TestParseSeed(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1337", 1337},
		{"+42", 42},
		{"-1", ^uint64(0)},
		{"18446744073709551615", ^uint64(0)},
		{"9223372036854775808", 1 << 63},
	}
	for _, c := range cases {
		if got := ParseSeed(c.in); got != c.want {
			t.Fatalf("ParseSeed(%q)=%d want %d", c.in, got, c.want)
		}
	}
}

func TestParseSeedHashesText(t *testing.T) {
	want := NewStateless(0x5712_5EED_DE7E_C7ED).HashBytes([]byte("terrain"))
	if got := ParseSeed("terrain"); got != want {
		t.Fatalf("ParseSeed(text)=%x want %x", got, want)
	}
	if ParseSeed("terrain") == ParseSeed("Terrain") {
		t.Fatalf("text seeds should differ")
	}
	// Out of range integers fall back to hashing.
	if got := ParseSeed("18446744073709551616"); got == 0 {
		t.Fatalf("unexpected zero seed")
	}
}

func TestSeedFromTime(t *testing.T) {
	at := time.Unix(1700000000, 123456789)
	want := NewStateless(1700000000).Hash1U64(123456789)
	if got := SeedFromTime(at); got != want {
		t.Fatalf("SeedFromTime=%x want %x", got, want)
	}
	if SeedFromTime(at) == SeedFromTime(at.Add(time.Nanosecond)) {
		t.Fatalf("adjacent instants share a seed")
	}
}
