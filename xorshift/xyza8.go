package xorshift

import (
	"github.com/soypat/xrand"
	"github.com/soypat/xrand/internal"
)

// Xyza8a is an 8-bit generator with a 32-bit state held in four byte lanes
// x, y, z and a. Each step shifts the lanes down and feeds a xorshift of the
// outgoing lane into a.
//
// It has a 0.8% chance of falling into a poor quality short cycle, so some
// care is required to seed it. For such a small state its output quality is
// excellent and it passes almost all of the diehard tests. Its longest cycle
// is 4,261,412,736.
//
// Ported from Edward Rosten's [8bit_rng], BSD 2-Clause license.
//
// [8bit_rng]: https://github.com/edrosten/8bit_rng
type Xyza8a struct {
	x, y, z, a uint8
}

// NewXyza8a seeds the lanes from seed, most significant byte first, so that
// Current returns seed until the first call to Next.
// It fails with [xrand.ErrZeroSeed] if seed is zero.
func NewXyza8a(seed uint32) (Xyza8a, error) {
	return NewXyza8aLanes(internal.UnpackLanes(seed))
}

// NewXyza8aLanes seeds each lane individually.
func NewXyza8aLanes(x, y, z, a uint8) (Xyza8a, error) {
	if internal.IsZeroed(x, y, z, a) {
		return Xyza8a{}, xrand.ErrZeroSeed
	}
	return Xyza8a{x: x, y: y, z: z, a: a}, nil
}

// NextUint8 advances the state one step and returns the new a lane.
func (g *Xyza8a) NextUint8() uint8 {
	t := g.x ^ (g.x << 4)
	g.x = g.y
	g.y = g.z
	g.z = g.a
	g.a = g.z ^ t ^ (g.z >> 1) ^ (t << 1)
	return g.a
}

// Next advances the state four steps, so every lane holds a fresh byte, and
// returns the lanes packed x, y, z, a from most to least significant byte.
func (g *Xyza8a) Next() uint32 {
	g.NextUint8()
	g.NextUint8()
	g.NextUint8()
	g.NextUint8()
	return g.Current()
}

// Current returns the lanes packed as in Next.
func (g *Xyza8a) Current() uint32 {
	return internal.PackLanes(g.x, g.y, g.z, g.a)
}

// Xyza8b is the sibling of [Xyza8a] with different shift constants.
// Its cycle is almost optimal at 4,294,967,294 so no care is required
// when seeding other than avoiding all zeros, but it fails many of the
// diehard tests.
type Xyza8b struct {
	x, y, z, a uint8
}

// NewXyza8b seeds the lanes from seed, most significant byte first.
// It fails with [xrand.ErrZeroSeed] if seed is zero.
func NewXyza8b(seed uint32) (Xyza8b, error) {
	return NewXyza8bLanes(internal.UnpackLanes(seed))
}

// NewXyza8bLanes seeds each lane individually.
func NewXyza8bLanes(x, y, z, a uint8) (Xyza8b, error) {
	if internal.IsZeroed(x, y, z, a) {
		return Xyza8b{}, xrand.ErrZeroSeed
	}
	return Xyza8b{x: x, y: y, z: z, a: a}, nil
}

// NextUint8 advances the state one step and returns the new a lane.
func (g *Xyza8b) NextUint8() uint8 {
	t := g.x ^ (g.x >> 1)
	g.x = g.y
	g.y = g.z
	g.z = g.a
	g.a = g.z ^ t ^ (g.z >> 3) ^ (t << 1)
	return g.a
}

// Next advances the state four steps, so every lane holds a fresh byte, and
// returns the lanes packed x, y, z, a from most to least significant byte.
func (g *Xyza8b) Next() uint32 {
	g.NextUint8()
	g.NextUint8()
	g.NextUint8()
	g.NextUint8()
	return g.Current()
}

// Current returns the lanes packed as in Next.
func (g *Xyza8b) Current() uint32 {
	return internal.PackLanes(g.x, g.y, g.z, g.a)
}
