package misc

// Xabc is an 8-bit generator for microcontrollers where multiplication is
// expensive. It keeps three mixing lanes a, b and c plus a step counter that
// is not affected by the other lanes, so even an all-zero seed moves.
//
// This is the classic XABC generator from the 8-bit hobbyist community.
type Xabc struct {
	a, b, c uint8
	x       uint8 // step counter
}

// NewXabc returns a Xabc with its lanes set to a, b and c.
func NewXabc(a, b, c uint8) Xabc {
	return Xabc{a: a, b: b, c: c}
}

// Next advances the state and returns the c lane.
func (g *Xabc) Next() uint8 {
	g.x++
	g.a ^= g.c ^ g.x
	g.b += g.a
	// b's high bits reach the low bits of c through the shift.
	g.c = (g.c + g.b>>1) ^ g.a
	return g.c
}

// Current returns the c lane.
func (g *Xabc) Current() uint8 { return g.c }
