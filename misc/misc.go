// Package misc implements 8-bit pseudo-random number generators that are not
// based on Xorshift. Both tolerate a zero seed.
package misc

import "github.com/soypat/xrand"

var (
	_ xrand.Generator[uint8] = (*Mult13P1)(nil)
	_ xrand.Generator[uint8] = (*Xabc)(nil)
)
