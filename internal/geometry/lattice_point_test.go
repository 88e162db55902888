package geometry

import "testing"

func TestLatticePointArithmetic(t *testing.T) {
	lhs := NewLatticePoint(15, 8)
	rhs := NewLatticePoint(5, 3)
	cases := []struct {
		name    string
		op      func(a, b LatticePoint) LatticePoint
		inPlace func(a, b LatticePoint)
		want    LatticePoint
	}{
		{"add", LatticePoint.Add, LatticePoint.AddInPlace, NewLatticePoint(20, 11)},
		{"sub", LatticePoint.Sub, LatticePoint.SubInPlace, NewLatticePoint(10, 5)},
		{"mul", LatticePoint.Mul, LatticePoint.MulInPlace, NewLatticePoint(75, 24)},
		{"div", LatticePoint.Div, LatticePoint.DivInPlace, NewLatticePoint(3, 2)},
		{"rem", LatticePoint.Rem, LatticePoint.RemInPlace, NewLatticePoint(0, 2)},
	}
	for _, c := range cases {
		if got := c.op(lhs, rhs); !got.Equal(c.want) {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
		acc := lhs.Clone()
		c.inPlace(acc, rhs)
		if !acc.Equal(c.want) {
			t.Fatalf("%s in place: got %v want %v", c.name, acc, c.want)
		}
	}
}

func TestLatticePointDivisionTruncatesTowardZero(t *testing.T) {
	got := NewLatticePoint(-7, 7).DivScalar(2)
	if !got.Equal(NewLatticePoint(-3, 3)) {
		t.Fatalf("div=%v", got)
	}
	got = NewLatticePoint(-7, 7).RemScalar(2)
	if !got.Equal(NewLatticePoint(-1, 1)) {
		t.Fatalf("rem=%v", got)
	}
}

func TestLatticePointDotAndSum(t *testing.T) {
	p := NewLatticePoint(2, -3, 4)
	if p.Sum() != 3 {
		t.Fatalf("sum=%d", p.Sum())
	}
	if got := p.Dot(NewLatticePoint(1, 1, 2)); got != 7 {
		t.Fatalf("dot=%d", got)
	}
	if got := p.Abs(); !got.Equal(NewLatticePoint(2, 3, 4)) {
		t.Fatalf("abs=%v", got)
	}
}

func TestLatticePointBytes(t *testing.T) {
	b := NewLatticePoint(1, -1).Bytes()
	want := []byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}
	if string(b) != string(want) {
		t.Fatalf("bytes=%x want %x", b, want)
	}
}

func TestLatticePointToReal(t *testing.T) {
	got := NewLatticePoint(-4, 9).ToReal()
	if !got.Equal(NewRealPoint(-4, 9)) {
		t.Fatalf("ToReal=%v", got)
	}
	if s := NewLatticePoint(-4, 9).String(); s != "(-4, 9)" {
		t.Fatalf("String=%q", s)
	}
}
