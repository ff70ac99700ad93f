package internal

import "golang.org/x/exp/constraints"

// Xorshift applies one three step shift-xor transition to x:
//
//	x ^= x << a
//	x ^= x >> b
//	x ^= x << c
//
// All operations wrap at the width of T. Zero maps to zero. For non-zero shift
// amounts the map is invertible so a non-zero x never becomes zero; a zero
// shift amount clears x entirely.
func Xorshift[T constraints.Unsigned](x T, a, b, c uint) T {
	x ^= x << a
	x ^= x >> b
	x ^= x << c
	return x
}

// Prand16 generates a pseudo random number from a seed.
func Prand16(seed uint16) uint16 {
	// 16bit Xorshift (7, 9, 8) by John Metcalf. https://en.wikipedia.org/wiki/Xorshift
	return Xorshift(seed, 7, 9, 8)
}

// Prand32 generates a pseudo random number from a seed.
func Prand32[T ~uint32](seed T) T {
	/* Algorithm "xor" from p. 4 of Marsaglia, "Xorshift RNGs" */
	return Xorshift(seed, 13, 17, 5)
}

// PackLanes packs four byte lanes into a word, x in the most significant byte.
func PackLanes(x, y, z, a uint8) uint32 {
	return uint32(x)<<24 | uint32(y)<<16 | uint32(z)<<8 | uint32(a)
}

// UnpackLanes is the inverse of [PackLanes].
func UnpackLanes(w uint32) (x, y, z, a uint8) {
	return uint8(w >> 24), uint8(w >> 16), uint8(w >> 8), uint8(w)
}
