// Package bitpack re-encodes bytes as septets (7-bit values) and back.
//
// The input is read as one contiguous MSB-first bitstream and cut into 7-bit
// groups. When the bit count is not a multiple of 7, the trailing bits are
// left-aligned in a final septet and zero padded. Since the padding is always
// shorter than 8 bits, Unpack never produces a spurious trailing byte, so
//
//	Unpack(Pack(b)) == b
//
// holds for every byte sequence b.
package bitpack

import (
	"fmt"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/internal/pool"
)

const (
	septetBits = 7
	septetMask = 1<<septetBits - 1
)

// PackedLen returns the number of septets Pack emits for n bytes.
func PackedLen(n int) int {
	return (n*8 + septetBits - 1) / septetBits
}

// Pack splits data into septets, MSB first.
func Pack(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(PackedLen(len(data)))

	var acc uint32
	nbits := 0
	for _, b := range data {
		acc = acc<<8 | uint32(b)
		nbits += 8
		for nbits >= septetBits {
			nbits -= septetBits
			_ = buf.WriteByte(byte(acc>>nbits) & septetMask)
		}
		acc &= 1<<nbits - 1
	}

	if nbits > 0 {
		_ = buf.WriteByte(byte(acc<<(septetBits-nbits)) & septetMask)
	}

	return buf.Clone()
}

// Unpack reassembles bytes from septets produced by Pack.
//
// Leftover bits at the end of the input (fewer than 8) are padding and are
// discarded. Returns errs.ErrInvalidSeptet if any value is not below 128.
func Unpack(septets []byte) ([]byte, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(septets) * septetBits / 8)

	var acc uint32
	nbits := 0
	for i, v := range septets {
		if v > septetMask {
			return nil, fmt.Errorf("%w: %d at %d", errs.ErrInvalidSeptet, v, i)
		}
		acc = acc<<septetBits | uint32(v)
		nbits += septetBits
		if nbits >= 8 {
			nbits -= 8
			_ = buf.WriteByte(byte(acc >> nbits))
			acc &= 1<<nbits - 1
		}
	}

	return buf.Clone(), nil
}
