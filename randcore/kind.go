package randcore

import (
	"encoding/binary"
	"errors"
	"strings"

	"github.com/soypat/xrand"
	"github.com/soypat/xrand/misc"
	"github.com/soypat/xrand/xorshift"
)

//go:generate stringer -type=Kind -linecomment -output stringers.go .

// Kind identifies one of the vetted generators of this module.
// [xorshift.XorShift8Custom] has no Kind, see [NewXorShift8Custom].
type Kind uint8

const (
	_                Kind = iota
	KindXorShift8         // xorshift8
	KindXorShift16        // xorshift16
	KindXorShift32        // xorshift32
	KindXorShift64        // xorshift64
	KindXorShift128       // xorshift128
	KindXorShift128p      // xorshift128+
	KindXyza8a            // xyza8a
	KindXyza8b            // xyza8b
	KindMult13P1          // mult13p1
	KindXabc              // xabc
	kindEnd
)

// maxSeedSize is the largest value returned by Kind.SeedSize.
const maxSeedSize = 16

var errUnknownKind = errors.New("randcore: unknown generator kind")

// Kinds returns all valid generator kinds.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindEnd-1)
	for k := KindXorShift8; k < kindEnd; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the Kind whose String matches s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k := KindXorShift8; k < kindEnd; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errUnknownKind
}

// IsValid reports whether k names a generator.
func (k Kind) IsValid() bool { return k > 0 && k < kindEnd }

// SeedSize returns the length of the seed accepted by [Kind.NewRand].
// It returns 0 for invalid kinds.
func (k Kind) SeedSize() int {
	switch k {
	case KindXorShift8, KindMult13P1:
		return 1
	case KindXorShift16:
		return 2
	case KindXabc:
		return 3
	case KindXorShift32, KindXyza8a, KindXyza8b:
		return 4
	case KindXorShift64:
		return 8
	case KindXorShift128, KindXorShift128p:
		return maxSeedSize
	}
	return 0
}

// NativeSize returns the size in bytes of one output of the generator.
// It returns 0 for invalid kinds.
func (k Kind) NativeSize() int {
	switch k {
	case KindXorShift8, KindMult13P1, KindXabc:
		return 1
	case KindXorShift16:
		return 2
	case KindXorShift32, KindXyza8a, KindXyza8b:
		return 4
	case KindXorShift64, KindXorShift128, KindXorShift128p:
		return 8
	}
	return 0
}

// NewRand builds a generator of kind k from seed and wraps it in a Rand.
// len(seed) must equal k.SeedSize(). Seed bytes are read as follows:
//   - single word seeds are little-endian.
//   - lane seeds use one byte per lane in order: x, y, z, a for Xyza8 and a, b, c for Xabc.
//   - XorShift128 reads four little-endian 32-bit lanes.
//   - XorShift128+ reads the low then the high little-endian 64-bit half.
//
// Generators that reject a zero seed return [xrand.ErrZeroSeed].
func (k Kind) NewRand(seed []byte) (*Rand, error) {
	if !k.IsValid() {
		return nil, errUnknownKind
	} else if len(seed) != k.SeedSize() {
		return nil, xrand.ErrSeedSize
	}
	le := binary.LittleEndian
	switch k {
	case KindXorShift8:
		g, err := xorshift.NewXorShift8(seed[0])
		if err != nil {
			return nil, err
		}
		return New[uint8](&g), nil
	case KindXorShift16:
		g, err := xorshift.NewXorShift16(le.Uint16(seed))
		if err != nil {
			return nil, err
		}
		return New[uint16](&g), nil
	case KindXorShift32:
		g, err := xorshift.NewXorShift32(le.Uint32(seed))
		if err != nil {
			return nil, err
		}
		return New[uint32](&g), nil
	case KindXorShift64:
		g, err := xorshift.NewXorShift64(le.Uint64(seed))
		if err != nil {
			return nil, err
		}
		return New[uint64](&g), nil
	case KindXorShift128:
		g, err := xorshift.NewXorShift128([4]uint32{
			le.Uint32(seed[0:]), le.Uint32(seed[4:]), le.Uint32(seed[8:]), le.Uint32(seed[12:]),
		})
		if err != nil {
			return nil, err
		}
		return New[uint64](&g), nil
	case KindXorShift128p:
		g, err := xorshift.NewXorShift128p(le.Uint64(seed[0:]), le.Uint64(seed[8:]))
		if err != nil {
			return nil, err
		}
		return New[uint64](&g), nil
	case KindXyza8a:
		g, err := xorshift.NewXyza8aLanes(seed[0], seed[1], seed[2], seed[3])
		if err != nil {
			return nil, err
		}
		return New[uint32](&g), nil
	case KindXyza8b:
		g, err := xorshift.NewXyza8bLanes(seed[0], seed[1], seed[2], seed[3])
		if err != nil {
			return nil, err
		}
		return New[uint32](&g), nil
	case KindMult13P1:
		g := misc.NewMult13P1(seed[0])
		return New[uint8](&g), nil
	case KindXabc:
		g := misc.NewXabc(seed[0], seed[1], seed[2])
		return New[uint8](&g), nil
	}
	return nil, errUnknownKind
}

// DeriveRand derives a seed of k.SeedSize() bytes from material with
// [DeriveSeed] and returns the resulting Rand. If the derived seed is
// rejected as zero, a salt byte is appended to material and the seed is
// derived again, so DeriveRand fails only for invalid kinds.
func (k Kind) DeriveRand(material ...[]byte) (*Rand, error) {
	if !k.IsValid() {
		return nil, errUnknownKind
	}
	var buf [maxSeedSize]byte
	seed := buf[:k.SeedSize()]
	var salt [1]byte
	for {
		var err error
		if salt[0] == 0 {
			err = DeriveSeed(seed, material...)
		} else {
			err = DeriveSeed(seed, append(material[:len(material):len(material)], salt[:])...)
		}
		if err != nil {
			return nil, err
		}
		r, err := k.NewRand(seed)
		if err != xrand.ErrZeroSeed || salt[0] == 255 {
			return r, err
		}
		salt[0]++
	}
}

// NewXorShift8Custom wraps a [xorshift.XorShift8Custom] seeded from a single
// byte with the given shift amounts.
func NewXorShift8Custom(seed [1]byte, s1, s2, s3 uint8) (*Rand, error) {
	g, err := xorshift.NewXorShift8Custom(seed[0], s1, s2, s3)
	if err != nil {
		return nil, err
	}
	return New[uint8](&g), nil
}
