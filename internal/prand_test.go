package internal

import (
	"math/rand"
	"testing"
)

func TestPrand32KnownAnswer(t *testing.T) {
	// Marsaglia's xorshift32 from seed 1.
	want := []uint32{0x00042021, 0x04080601, 0x9dcca8c5, 0x1255994f}
	x := uint32(1)
	for i, w := range want {
		x = Prand32(x)
		if x != w {
			t.Fatalf("step %d: got %#x; want %#x", i, x, w)
		}
	}
}

func TestPrand16KnownAnswer(t *testing.T) {
	want := []uint16{0x8181, 0x6021, 0xe999, 0x2e0b}
	x := uint16(1)
	for i, w := range want {
		x = Prand16(x)
		if x != w {
			t.Fatalf("step %d: got %#x; want %#x", i, x, w)
		}
	}
}

func TestXorshiftZero(t *testing.T) {
	if got := Xorshift(uint8(0), 3, 4, 2); got != 0 {
		t.Errorf("uint8: got %d; want 0", got)
	}
	if got := Xorshift(uint64(0), 13, 7, 17); got != 0 {
		t.Errorf("uint64: got %d; want 0", got)
	}
}

func TestXorshiftNonZero(t *testing.T) {
	// Every non-zero byte stays non-zero, even with shifts that empty the byte.
	shifts := [][3]uint{{3, 4, 2}, {1, 1, 3}, {7, 7, 7}, {8, 1, 9}}
	for _, s := range shifts {
		for v := 1; v < 256; v++ {
			if Xorshift(uint8(v), s[0], s[1], s[2]) == 0 {
				t.Fatalf("shifts %v mapped %#x to zero", s, v)
			}
		}
	}
}

func TestPackLanes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		w := rng.Uint32()
		x, y, z, a := UnpackLanes(w)
		if got := PackLanes(x, y, z, a); got != w {
			t.Fatalf("got %#x; want %#x", got, w)
		}
	}
	if got := PackLanes(1, 2, 3, 4); got != 0x01020304 {
		t.Errorf("got %#x; want 0x01020304", got)
	}
}

func TestIsZeroed(t *testing.T) {
	if !IsZeroed[uint32]() {
		t.Error("empty argument list should be zeroed")
	}
	if !IsZeroed[uint8](0, 0, 0, 0) {
		t.Error("all zero lanes not zeroed")
	}
	if IsZeroed[uint8](0, 0, 1, 0) {
		t.Error("non-zero lane reported as zeroed")
	}
}
