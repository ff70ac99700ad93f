package xorshift

import (
	"github.com/soypat/xrand"
	"github.com/soypat/xrand/internal"
)

// XorShift8Custom is an 8-bit XorShift with caller chosen shift amounts,
// meant for experimenting with shift triples. Use [XorShift8] for the vetted
// (3, 4, 2) triple.
//
// Shift amounts are not validated. Amounts of 8 or more shift every bit out
// and a zero amount clears the state, both of which degrade or collapse the
// stream. Picking amounts in 1..7 with a long period is up to the caller.
type XorShift8Custom struct {
	state  uint8
	shifts [3]uint8
}

// NewXorShift8Custom returns a generator applying x ^= x<<s1, x ^= x>>s2,
// x ^= x<<s3 on every step. It fails with [xrand.ErrZeroSeed] if seed is zero.
func NewXorShift8Custom(seed, s1, s2, s3 uint8) (XorShift8Custom, error) {
	if seed == 0 {
		return XorShift8Custom{}, xrand.ErrZeroSeed
	}
	return XorShift8Custom{state: seed, shifts: [3]uint8{s1, s2, s3}}, nil
}

// Next advances the state and returns it.
func (g *XorShift8Custom) Next() uint8 {
	g.state = internal.Xorshift(g.state, uint(g.shifts[0]), uint(g.shifts[1]), uint(g.shifts[2]))
	return g.state
}

// Current returns the current state.
func (g *XorShift8Custom) Current() uint8 { return g.state }

// Shifts returns the shift amounts the generator was built with.
func (g *XorShift8Custom) Shifts() (s1, s2, s3 uint8) {
	return g.shifts[0], g.shifts[1], g.shifts[2]
}
