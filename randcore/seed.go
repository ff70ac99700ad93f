package randcore

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/soypat/xrand"
	"golang.org/x/crypto/blake2b"
)

// DeriveSeed fills dst with bytes derived from material using the BLAKE2b
// extendable output function. The result depends only on the material, in
// order, and on len(dst); each piece is length prefixed so that splitting the
// same bytes differently yields a different seed.
//
// DeriveSeed turns phrases, identifiers or file contents into seeds of any
// width. It reads no system entropy.
func DeriveSeed(dst []byte, material ...[]byte) error {
	if len(dst) == 0 {
		return nil
	} else if uint64(len(dst)) >= math.MaxUint32-1 {
		return xrand.ErrSeedSize
	}
	xof, err := blake2b.NewXOF(uint32(len(dst)), nil)
	if err != nil {
		return err
	}
	var lenbuf [8]byte
	for _, m := range material {
		binary.LittleEndian.PutUint64(lenbuf[:], uint64(len(m)))
		xof.Write(lenbuf[:])
		xof.Write(m)
	}
	_, err = io.ReadFull(xof, dst)
	return err
}
