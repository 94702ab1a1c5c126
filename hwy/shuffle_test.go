package hwy

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestShuffle0123(t *testing.T) {
	v := Int32x4{10, 11, 12, 13}

	tests := []struct {
		name           string
		i0, i1, i2, i3 int
		want           Int32x4
	}{
		{"identity", 0, 1, 2, 3, Int32x4{10, 11, 12, 13}},
		{"reverse", 3, 2, 1, 0, Int32x4{13, 12, 11, 10}},
		{"dup odd", 1, 1, 3, 3, Int32x4{11, 11, 13, 13}},
		{"broadcast", 2, 2, 2, 2, Int32x4{12, 12, 12, 12}},
		{"modulo", 4, 5, 6, 7, Int32x4{10, 11, 12, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shuffle0123(v, tt.i0, tt.i1, tt.i2, tt.i3); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOddEven(t *testing.T) {
	a := Int32x4{1, 2, 3, 4}
	b := Int32x4{5, 6, 7, 8}
	if got := OddEven(a, b); got != (Int32x4{5, 2, 7, 4}) {
		t.Errorf("OddEven: got %v, want [5 2 7 4]", got)
	}
	if got := DupOdd(a); got != (Int32x4{2, 2, 4, 4}) {
		t.Errorf("DupOdd: got %v, want [2 2 4 4]", got)
	}
}

func TestMulEven(t *testing.T) {
	a := Int32x4{math.MinInt32, 99, -3, 99}
	b := Int32x4{math.MinInt32, 99, 0x55555556, 99}
	got := MulEven(a, b)
	want := Int64x2{1 << 62, -3 * 0x55555556}
	if got != want {
		t.Errorf("MulEven: got %v, want %v", got, want)
	}

	halves := Int64x2{-2, 0x0000000100000002}.AsInt32x4()
	if halves != (Int32x4{-2, -1, 2, 1}) {
		t.Errorf("Int64x2.AsInt32x4: got %v, want [-2 -1 2 1]", halves)
	}
}

func TestMulHigh(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		var a, b Int32x4
		for i := range a {
			a[i] = int32(rng.Uint32())
			b[i] = int32(rng.Uint32())
		}
		got := MulHigh(a, b)
		for i := range a {
			want := int32((int64(a[i]) * int64(b[i])) >> 32)
			if got[i] != want {
				t.Fatalf("MulHigh(%d, %d) lane %d = %d, want %d", a[i], b[i], i, got[i], want)
			}
		}
	}
}
