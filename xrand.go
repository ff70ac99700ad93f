// Package xrand holds small deterministic pseudo-random number generators
// meant for targets without a heap or an operating system.
//
// Generators live in subpackages:
//   - [github.com/soypat/xrand/xorshift]: XorShift family from 8 to 128 bits and the four lane Xyza8 generators.
//   - [github.com/soypat/xrand/misc]: other 8-bit generators (Mult13P1, Xabc).
//   - [github.com/soypat/xrand/randcore]: adapter exposing any generator as a math/rand/v2 Source and io.Reader.
//
// None of the generators are cryptographically secure. Seeds are always
// supplied by the caller; this module never reads system entropy.
package xrand

import "golang.org/x/exp/constraints"

// Generator is implemented by every generator in this module. Implementations
// differ in state shape and transition constants but are interchangeable
// wherever only the next pseudo-random word is needed.
//
// Generators are seeded by their package's New functions, which are the only
// way to set state. There is no in-place reseed: build a new generator instead.
// A Generator is not safe for concurrent use.
type Generator[T constraints.Unsigned] interface {
	// Next advances the state and returns the new output word.
	Next() T
	// Current returns the output word for the current state without advancing it.
	Current() T
}
