// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package block implements the fixed-size mutable byte buffer shared by the
// AES core, the block-mode engine, and the CTR PRNG: a Block is always
// exactly N bytes, supports XOR, logical left shift, big-counter increment,
// bounds-checked indexing, and padding-aware string conversion.
package block

import (
	"golang.org/x/exp/slices"

	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/padding"
)

// Block is a fixed-size, mutable byte buffer. The zero value is not usable;
// construct one with New or From.
type Block struct {
	data    []byte
	initLen int
	padding padding.Mode
}

// New returns a zero-valued block of the given size, with the padding
// policy for an empty (zero-length) payload already applied.
func New(size int, mode padding.Mode) *Block {
	b := &Block{data: make([]byte, size), padding: mode}
	b.Pad(0)
	return b
}

// From copies up to size bytes from data into a new block, padding the
// remainder if data is shorter than size.
func From(data []byte, size int, mode padding.Mode) *Block {
	b := &Block{data: make([]byte, size), padding: mode, initLen: size}
	n := copy(b.data, data)
	if n < size {
		b.Pad(n)
	}
	return b
}

// Len returns the block's fixed size, N.
func (b *Block) Len() int { return len(b.data) }

// InitLen returns the number of bytes that were "real" payload at
// construction time, excluding any automatically added padding. CFB-8 uses
// this to avoid letting trailing padding bytes perturb its shift register.
func (b *Block) InitLen() int { return b.initLen }

// SetAt writes v to index i, or returns aeserr.ErrOutOfRange if i >= Len().
func (b *Block) SetAt(i int, v byte) error {
	if i < 0 || i >= len(b.data) {
		return aeserr.ErrOutOfRange
	}
	b.data[i] = v
	return nil
}

// Bytes returns the block's underlying byte slice. Callers that mutate the
// returned slice mutate the block; it is provided for the AES core and mode
// engine, which operate directly on block contents.
func (b *Block) Bytes() []byte { return b.data }

// Equal reports whether two blocks of the same length hold identical bytes.
func (b *Block) Equal(other *Block) bool {
	return slices.Equal(b.data, other.data)
}

// NotEqual reports whether two blocks differ in length or contents.
func (b *Block) NotEqual(other *Block) bool {
	return !b.Equal(other)
}

// Xor XORs other into b in place. The blocks must be the same length.
func (b *Block) Xor(other *Block) {
	for i := range b.data {
		b.data[i] ^= other.data[i]
	}
}

// XorBytes XORs a raw byte slice into b in place, up to min(len(b.data), len(src)) bytes.
func (b *Block) XorBytes(src []byte) {
	n := len(b.data)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		b.data[i] ^= src[i]
	}
}

// ShiftLeft shifts the block's bits left logically (MSB-first across the
// whole buffer), zero-filling the tail. A shift of bitCount >= 8*Len()
// yields an all-zero block.
func (b *Block) ShiftLeft(bitCount int) {
	n := len(b.data)
	byteCount := bitCount / 8

	if byteCount > 0 {
		if byteCount >= n {
			for i := range b.data {
				b.data[i] = 0
			}
			return
		}

		copy(b.data, b.data[byteCount:])
		for i := n - byteCount; i < n; i++ {
			b.data[i] = 0
		}
		bitCount %= 8
	}

	if bitCount == 0 {
		return
	}

	for i := 0; i < n-1; i++ {
		b.data[i] = (b.data[i] << uint(bitCount)) | (b.data[i+1] >> uint(8-bitCount))
	}
	b.data[n-1] <<= uint(bitCount)
}

// Inc treats the block as a little-endian (byte 0 least significant)
// unsigned integer and adds one, propagating carry upward and wrapping on
// overflow.
func (b *Block) Inc() {
	for i := 0; i < len(b.data); i++ {
		b.data[i]++
		if b.data[i] != 0 {
			return
		}
	}
}

// CopyFrom copies up to min(Len()-offset, len(src)) bytes from src into b
// starting at offset.
func (b *Block) CopyFrom(src []byte, offset int) {
	n := len(b.data) - offset
	if n <= 0 {
		return
	}
	if len(src) < n {
		n = len(src)
	}
	copy(b.data[offset:offset+n], src[:n])
}

// Pad re-applies the padding policy to the tail of the block, treating the
// first length bytes as real payload. It also updates InitLen to
// min(length, Len()).
func (b *Block) Pad(length int) {
	padding.Pad(b.data, length, b.padding)
	if length > len(b.data) {
		length = len(b.data)
	}
	b.initLen = length
}

// AsString returns the block's contents as a byte slice. If stripPadding is
// set, the trailing padding (per the block's padding mode) is removed; if
// the tail does not conform to that padding mode, AsString returns
// aeserr.ErrGarbled.
func (b *Block) AsString(stripPadding bool) ([]byte, error) {
	if !stripPadding {
		out := make([]byte, len(b.data))
		copy(out, b.data)
		return out, nil
	}

	pos, err := padding.Unpad(b.data, b.padding)
	if err != nil {
		return nil, err
	}
	out := make([]byte, pos)
	copy(out, b.data[:pos])
	return out, nil
}
