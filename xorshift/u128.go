package xorshift

import (
	"math/bits"

	"github.com/soypat/xrand"
	"github.com/soypat/xrand/internal"
)

// XorShift128 has a 128-bit state held in four 32-bit lanes and generates
// 64-bit numbers made of the two most recent lanes.
type XorShift128 struct {
	s [4]uint32
}

// NewXorShift128 returns a XorShift128 with its lanes set to seeds.
// It fails with [xrand.ErrZeroSeed] if all lanes are zero.
func NewXorShift128(seeds [4]uint32) (XorShift128, error) {
	if internal.IsZeroed(seeds[:]...) {
		return XorShift128{}, xrand.ErrZeroSeed
	}
	return XorShift128{s: seeds}, nil
}

// NewXorShift128From64 seeds a XorShift128 from two 64-bit halves. The lanes are
// set to lo's low and high words followed by hi's low and high words.
func NewXorShift128From64(lo, hi uint64) (XorShift128, error) {
	return NewXorShift128([4]uint32{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)})
}

// Next advances the state and returns the first lane in the high
// 32 bits and the second lane in the low 32 bits.
func (g *XorShift128) Next() uint64 {
	t := g.s[3]
	s := g.s[0]
	g.s[3] = g.s[2]
	g.s[2] = g.s[1]
	g.s[1] = s
	s ^= s << 11
	s ^= s >> 8
	g.s[0] = s ^ t ^ (t >> 19)
	return g.Current()
}

// Current returns the output word for the current lanes.
func (g *XorShift128) Current() uint64 {
	return uint64(g.s[0])<<32 | uint64(g.s[1])
}

// XorShift128p is the XorShift128+ generator. It has a 128-bit state in two
// 64-bit lanes and generates 64-bit numbers. Its output is the sum of both
// lanes, which avoids the linearity failures of plain [XorShift128].
type XorShift128p struct {
	s [2]uint64
}

// NewXorShift128p returns a XorShift128p seeded with the 128-bit value hi:lo.
// It fails with [xrand.ErrZeroSeed] if both halves are zero.
func NewXorShift128p(lo, hi uint64) (XorShift128p, error) {
	if lo|hi == 0 {
		return XorShift128p{}, xrand.ErrZeroSeed
	}
	return XorShift128p{s: [2]uint64{lo, hi}}, nil
}

// NewXorShift128pLanes seeds a XorShift128p from four 32-bit words, least
// significant first: seeds[1]:seeds[0] becomes the low half and
// seeds[3]:seeds[2] the high half.
func NewXorShift128pLanes(seeds [4]uint32) (XorShift128p, error) {
	lo := uint64(seeds[1])<<32 | uint64(seeds[0])
	hi := uint64(seeds[3])<<32 | uint64(seeds[2])
	return NewXorShift128p(lo, hi)
}

// Next returns the wrapping sum of the lanes and then advances the state.
func (g *XorShift128p) Next() uint64 {
	s1 := g.s[0]
	s0 := g.s[1]
	result := s0 + s1
	s1 ^= s0
	g.s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16) // a, b
	g.s[1] = bits.RotateLeft64(s1, 37)                   // c
	return result
}

// Current returns the value the next call to Next will return.
func (g *XorShift128p) Current() uint64 {
	return g.s[0] + g.s[1]
}
