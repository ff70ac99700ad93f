package xrand_test

import (
	"errors"
	"testing"

	"github.com/soypat/xrand"
	"github.com/soypat/xrand/misc"
	"github.com/soypat/xrand/xorshift"
	"golang.org/x/exp/constraints"
)

// checkGenerator checks the Generator contract on g for a few steps:
// Current never advances the state and reflects the last Next.
func checkGenerator[T constraints.Unsigned](t *testing.T, name string, g xrand.Generator[T]) {
	t.Helper()
	for i := 0; i < 16; i++ {
		before := g.Current()
		if again := g.Current(); again != before {
			t.Fatalf("%s: Current changed state %#x -> %#x", name, before, again)
		}
		got := g.Next()
		if cur := g.Current(); cur != got {
			t.Fatalf("%s: Current %#x after Next %#x", name, cur, got)
		}
	}
}

func TestGeneratorContract(t *testing.T) {
	x8, _ := xorshift.NewXorShift8(1)
	x8c, _ := xorshift.NewXorShift8Custom(1, 1, 1, 3)
	x16, _ := xorshift.NewXorShift16(1)
	x32, _ := xorshift.NewXorShift32(1)
	x64, _ := xorshift.NewXorShift64(1)
	x128, _ := xorshift.NewXorShift128From64(1, 2)
	ya, _ := xorshift.NewXyza8a(1)
	yb, _ := xorshift.NewXyza8b(1)
	m := misc.NewMult13P1(misc.DefaultMult13P1Seed)
	abc := misc.NewXabc(1, 2, 3)

	checkGenerator[uint8](t, "xorshift8", &x8)
	checkGenerator[uint8](t, "xorshift8custom", &x8c)
	checkGenerator[uint16](t, "xorshift16", &x16)
	checkGenerator[uint32](t, "xorshift32", &x32)
	checkGenerator[uint64](t, "xorshift64", &x64)
	checkGenerator[uint64](t, "xorshift128", &x128)
	checkGenerator[uint32](t, "xyza8a", &ya)
	checkGenerator[uint32](t, "xyza8b", &yb)
	checkGenerator[uint8](t, "mult13p1", &m)
	checkGenerator[uint8](t, "xabc", &abc)
}

func TestXorShift128pCurrentPeeks(t *testing.T) {
	// XorShift128+ outputs from the state before the update, so Current
	// predicts the next output instead of repeating the last.
	g, _ := xorshift.NewXorShift128p(1, 2)
	var gen xrand.Generator[uint64] = &g
	for i := 0; i < 16; i++ {
		want := gen.Current()
		if got := gen.Next(); got != want {
			t.Fatalf("step %d: Next %#x; Current predicted %#x", i, got, want)
		}
	}
}

func TestErrors(t *testing.T) {
	if xrand.ErrZeroSeed.Error() != "zero seed" {
		t.Errorf("got %q", xrand.ErrZeroSeed.Error())
	}
	if xrand.ErrSeedSize.Error() != "bad seed length" {
		t.Errorf("got %q", xrand.ErrSeedSize.Error())
	}
	_, err := xorshift.NewXorShift32(0)
	if !errors.Is(err, xrand.ErrZeroSeed) || errors.Is(err, xrand.ErrSeedSize) {
		t.Errorf("got %v; want %v", err, xrand.ErrZeroSeed)
	}
	allocs := testing.AllocsPerRun(10, func() {
		_, err = xorshift.NewXorShift64(0)
	})
	if allocs != 0 {
		t.Errorf("constructor error allocated %v times", allocs)
	}
}
