package misc

import "math/bits"

// DefaultMult13P1Seed is a seed for callers without a preference.
const DefaultMult13P1Seed = 0xDE

// Mult13P1 is a weak 8-bit generator from 1977: every step multiplies the
// state by 13 and adds 1, using only shifts and additions.
// The low bits of such an affine step cycle with short periods, so the
// output is the state with its nibbles swapped.
//
// The state visits all 256 values before repeating. The zero value is a
// valid generator seeded with 0.
//
// The algorithm is by B. J. Murphy, published in
// [Byte Magazine, November 1977, page 218].
//
// [Byte Magazine, November 1977, page 218]: https://archive.org/details/BYTE_Vol_02-11_1977-11_Sweet_16/page/n219/
type Mult13P1 struct {
	state uint8
}

// NewMult13P1 returns a Mult13P1 seeded with seed.
func NewMult13P1(seed uint8) Mult13P1 {
	return Mult13P1{state: seed}
}

// Next advances the state and returns the permuted state.
func (g *Mult13P1) Next() uint8 {
	n := g.state
	// 13*n = n + n*2^2 + n*2^3
	g.state = n + n<<2 + n<<3 + 1
	return g.Current()
}

// Current returns the permuted current state.
func (g *Mult13P1) Current() uint8 {
	return bits.RotateLeft8(g.state, 4)
}
