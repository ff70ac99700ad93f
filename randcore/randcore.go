// Package randcore adapts the generators of this module to the interfaces
// generic Go code expects from a random source: [math/rand/v2.Source] and
// [io.Reader]. Only programs importing randcore pay for it.
//
// The adapter performs no transformation of its own. Native outputs are
// written little-endian, so the byte stream produced by [Rand.FillBytes] is
// the concatenation of successive Next outputs of the wrapped generator.
package randcore

import (
	"io"
	"math/bits"
	"math/rand/v2"

	"github.com/soypat/xrand"
	"golang.org/x/exp/constraints"
)

var (
	_ rand.Source = (*Rand)(nil)
	_ io.Reader   = (*Rand)(nil)
)

// Rand exposes a generator through the generic random source methods.
// Like the generators it wraps, Rand is not safe for concurrent use.
type Rand struct {
	src  nativeSource
	size int // bytes per native output.
}

type nativeSource interface {
	next() uint64
}

type native[T constraints.Unsigned] struct {
	g xrand.Generator[T]
}

func (n native[T]) next() uint64 { return uint64(n.g.Next()) }

// New returns a Rand driving g. The caller must not advance g
// directly afterwards if it expects reproducible Rand output.
func New[T constraints.Unsigned](g xrand.Generator[T]) *Rand {
	return &Rand{
		src:  native[T]{g: g},
		size: bits.Len64(uint64(^T(0))) / 8,
	}
}

// NativeSize returns the size in bytes of one output of the wrapped generator.
func (r *Rand) NativeSize() int { return r.size }

// Uint64 returns a pseudo-random 64-bit value. Generators narrower than 64
// bits contribute successive outputs from least to most significant bits.
func (r *Rand) Uint64() uint64 {
	if r.size >= 8 {
		return r.src.next()
	}
	var v uint64
	for shift := 0; shift < 64; shift += 8 * r.size {
		v |= r.src.next() << shift
	}
	return v
}

// Uint32 returns a pseudo-random 32-bit value. Generators narrower than 32
// bits contribute successive outputs from least to most significant bits.
// Wider generators contribute the low 32 bits of a single output.
func (r *Rand) Uint32() uint32 {
	if r.size >= 4 {
		return uint32(r.src.next())
	}
	var v uint32
	for shift := 0; shift < 32; shift += 8 * r.size {
		v |= uint32(r.src.next()) << shift
	}
	return v
}

// FillBytes fills dst with successive native outputs in little-endian order.
// The bytes of the last output that do not fit in dst are discarded.
func (r *Rand) FillBytes(dst []byte) {
	for len(dst) > 0 {
		v := r.src.next()
		n := min(r.size, len(dst))
		for i := 0; i < n; i++ {
			dst[i] = byte(v >> (8 * i))
		}
		dst = dst[n:]
	}
}

// Read fills p as [Rand.FillBytes] does. It always returns len(p), nil.
func (r *Rand) Read(p []byte) (int, error) {
	r.FillBytes(p)
	return len(p), nil
}
