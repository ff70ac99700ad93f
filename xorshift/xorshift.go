// Package xorshift implements pseudo-random number generators based on
// [Xorshift]: the classic Marsaglia generators of 32, 64 and 128 bits, the
// XorShift128+ variant, reduced state versions of 8 and 16 bits and the four
// lane Xyza8 generators.
//
// Pure XorShift transitions map zero to zero, so every constructor in this
// package rejects an all-zero seed with [xrand.ErrZeroSeed]. For the same
// reason the zero value of each generator type is not a usable generator:
// it yields zero forever.
//
// [Xorshift]: https://en.wikipedia.org/wiki/Xorshift
package xorshift

import (
	"github.com/soypat/xrand"
	"github.com/soypat/xrand/internal"
)

var (
	_ xrand.Generator[uint8]  = (*XorShift8)(nil)
	_ xrand.Generator[uint8]  = (*XorShift8Custom)(nil)
	_ xrand.Generator[uint16] = (*XorShift16)(nil)
	_ xrand.Generator[uint32] = (*XorShift32)(nil)
	_ xrand.Generator[uint64] = (*XorShift64)(nil)
	_ xrand.Generator[uint64] = (*XorShift128)(nil)
	_ xrand.Generator[uint64] = (*XorShift128p)(nil)
	_ xrand.Generator[uint32] = (*Xyza8a)(nil)
	_ xrand.Generator[uint32] = (*Xyza8b)(nil)
)

// XorShift8 has an 8-bit state and generates 8-bit numbers.
// It is a (3, 4, 2) reduction of [XorShift16]. Its cycles are short, at most
// 10 states long, so it suits only the tightest of targets.
type XorShift8 struct {
	state uint8
}

// NewXorShift8 returns a XorShift8 seeded with seed. It fails with
// [xrand.ErrZeroSeed] if seed is zero.
func NewXorShift8(seed uint8) (XorShift8, error) {
	if seed == 0 {
		return XorShift8{}, xrand.ErrZeroSeed
	}
	return XorShift8{state: seed}, nil
}

// Next advances the state and returns it.
func (g *XorShift8) Next() uint8 {
	g.state = internal.Xorshift(g.state, 3, 4, 2)
	return g.state
}

// Current returns the current state.
func (g *XorShift8) Current() uint8 { return g.state }

// XorShift16 has a 16-bit state and generates 16-bit numbers.
// This is John Metcalf's (7, 9, 8) version of [XorShift32].
type XorShift16 struct {
	state uint16
}

// NewXorShift16 returns a XorShift16 seeded with seed. It fails with
// [xrand.ErrZeroSeed] if seed is zero.
func NewXorShift16(seed uint16) (XorShift16, error) {
	if seed == 0 {
		return XorShift16{}, xrand.ErrZeroSeed
	}
	return XorShift16{state: seed}, nil
}

// Next advances the state and returns it.
func (g *XorShift16) Next() uint16 {
	g.state = internal.Prand16(g.state)
	return g.state
}

// Current returns the current state.
func (g *XorShift16) Current() uint16 { return g.state }

// XorShift32 is the classic (13, 17, 5) 32-bit generator by George Marsaglia.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a XorShift32 seeded with seed. It fails with
// [xrand.ErrZeroSeed] if seed is zero.
func NewXorShift32(seed uint32) (XorShift32, error) {
	if seed == 0 {
		return XorShift32{}, xrand.ErrZeroSeed
	}
	return XorShift32{state: seed}, nil
}

// Next advances the state and returns it.
func (g *XorShift32) Next() uint32 {
	g.state = internal.Prand32(g.state)
	return g.state
}

// Current returns the current state.
func (g *XorShift32) Current() uint32 { return g.state }

// XorShift64 is the classic (13, 7, 17) 64-bit generator by George Marsaglia.
type XorShift64 struct {
	state uint64
}

// NewXorShift64 returns a XorShift64 seeded with seed. It fails with
// [xrand.ErrZeroSeed] if seed is zero.
func NewXorShift64(seed uint64) (XorShift64, error) {
	if seed == 0 {
		return XorShift64{}, xrand.ErrZeroSeed
	}
	return XorShift64{state: seed}, nil
}

// Next advances the state and returns it.
func (g *XorShift64) Next() uint64 {
	g.state = internal.Xorshift(g.state, 13, 7, 17)
	return g.state
}

// Current returns the current state.
func (g *XorShift64) Current() uint64 { return g.state }
