// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package aescore implements byte-oriented AES-256: the FIPS-197 key
// schedule, and 16-byte block encryption and decryption. It has no notion
// of chaining mode or padding; those live one layer up in the block-mode
// engine.
//
// The implementation works a byte at a time rather than through
// word-at-a-time table lookups, following the traditional Levin/Finney
// byte-oriented construction: sub_bytes, shift_rows and mix_columns each
// touch the 16-byte buffer directly, and round keys are produced on demand
// by expanding a running copy of the key rather than precomputing all 15
// round keys up front.
package aescore

import (
	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
	"github.com/vaultbyte/aes256/internal/padding"
	"github.com/vaultbyte/aes256/internal/sbox"
)

const keySize = 32

// Core holds the expanded AES-256 encryption and decryption keys for one
// 32-byte key. A Core has no other mutable state and is safe to reuse
// across many block encrypt/decrypt calls.
type Core struct {
	encKey *block.Block // 32 bytes
	decKey *block.Block // 32 bytes
}

// New builds a Core from key, using the first 32 bytes. It returns
// aeserr.ErrInvalidKey if key is shorter than 32 bytes.
func New(key []byte) (*Core, error) {
	if len(key) < keySize {
		return nil, aeserr.ErrInvalidKey
	}

	encKey := block.From(key, keySize, padding.AllNull)
	decKey := block.From(key, keySize, padding.AllNull)

	// The decryption key is the encryption key run forward through seven
	// rounds of key expansion, stopping once rcon reaches 0x80.
	rcon := byte(1)
	for rcon != 0x80 {
		expandEncKey(decKey, &rcon)
	}

	return &Core{encKey: encKey, decKey: decKey}, nil
}

// Key returns a copy of the 32-byte key this Core was constructed with.
func (c *Core) Key() []byte {
	out := make([]byte, keySize)
	copy(out, c.encKey.Bytes())
	return out
}

// Encrypt encrypts buf (which must be 16 bytes) in place and returns it.
func (c *Core) Encrypt(buf *block.Block) *block.Block {
	key := block.From(c.encKey.Bytes(), keySize, padding.AllNull)

	addRoundKey(buf, key.Bytes()[0:16])
	rcon := byte(1)

	for i := byte(1); i < 14; i++ {
		subBytes(buf)
		shiftRows(buf)
		mixColumns(buf)

		if i&1 == 1 {
			addRoundKey(buf, key.Bytes()[16:32])
		} else {
			expandEncKey(key, &rcon)
			addRoundKey(buf, key.Bytes()[0:16])
		}
	}

	subBytes(buf)
	shiftRows(buf)
	expandEncKey(key, &rcon)
	addRoundKey(buf, key.Bytes()[0:16])

	return buf
}

// Decrypt decrypts buf (which must be 16 bytes) in place and returns it.
func (c *Core) Decrypt(buf *block.Block) *block.Block {
	key := block.From(c.decKey.Bytes(), keySize, padding.AllNull)

	addRoundKey(buf, key.Bytes()[0:16])
	invShiftRows(buf)
	invSubBytes(buf)

	rcon := byte(0x80)

	for i := byte(1); i < 14; i++ {
		if i&1 == 1 {
			expandDecKey(key, &rcon)
			addRoundKey(buf, key.Bytes()[16:32])
		} else {
			addRoundKey(buf, key.Bytes()[0:16])
		}

		invMixColumns(buf)
		invShiftRows(buf)
		invSubBytes(buf)
	}

	addRoundKey(buf, key.Bytes()[0:16])

	return buf
}

func addRoundKey(buf *block.Block, key []byte) {
	buf.XorBytes(key)
}

func subBytes(buf *block.Block) {
	d := buf.Bytes()
	for i := range d {
		d[i] = sbox.Sub(d[i])
	}
}

func invSubBytes(buf *block.Block) {
	d := buf.Bytes()
	for i := range d {
		d[i] = sbox.InvSub(d[i])
	}
}

// shiftRows rotates rows 1, 2 and 3 of the column-major 4x4 state by 1, 2
// and 3 positions respectively.
func shiftRows(buf *block.Block) {
	d := buf.Bytes()

	tmp := d[1]
	d[1] = d[5]
	d[5] = d[9]
	d[9] = d[13]
	d[13] = tmp

	tmp = d[10]
	d[10] = d[2]
	d[2] = tmp

	tmp = d[3]
	d[3] = d[15]
	d[15] = d[11]
	d[11] = d[7]
	d[7] = tmp

	tmp = d[14]
	d[14] = d[6]
	d[6] = tmp
}

func invShiftRows(buf *block.Block) {
	d := buf.Bytes()

	tmp := d[1]
	d[1] = d[13]
	d[13] = d[9]
	d[9] = d[5]
	d[5] = tmp

	tmp = d[2]
	d[2] = d[10]
	d[10] = tmp

	tmp = d[3]
	d[3] = d[7]
	d[7] = d[11]
	d[11] = d[15]
	d[15] = tmp

	tmp = d[6]
	d[6] = d[14]
	d[14] = tmp
}

func mixColumns(buf *block.Block) {
	d := buf.Bytes()

	for col := 0; col < 4; col++ {
		b := d[col*4 : col*4+4]
		var tmp [4]byte
		copy(tmp[:], b)

		m := b[0] ^ b[1] ^ b[2] ^ b[3]
		for j := 0; j < 4; j++ {
			b[j] ^= m ^ rjXtime(tmp[j]^tmp[(j+1)&3])
		}
	}
}

func invMixColumns(buf *block.Block) {
	d := buf.Bytes()

	for col := 0; col < 4; col++ {
		b := d[col*4 : col*4+4]
		var tmp [4]byte
		copy(tmp[:], b)

		m1 := b[0] ^ b[1] ^ b[2] ^ b[3]
		m2 := rjXtime(m1)

		var m3 [2]byte
		m3[0] = m1 ^ rjXtime(rjXtime(m2^tmp[0]^tmp[2]))
		m3[1] = m1 ^ rjXtime(rjXtime(m2^tmp[1]^tmp[3]))

		for j := 0; j < 4; j++ {
			b[j] ^= m3[j&1] ^ rjXtime(tmp[j]^tmp[(j+1)&3])
		}
	}
}

// rjXtime is the GF(2^8) "multiply by x" operation used throughout
// MixColumns: a left shift, reduced by the Rijndael polynomial when the
// high bit would otherwise be lost.
func rjXtime(x byte) byte {
	if x&0x80 != 0 {
		return (x << 1) ^ 0x1b
	}
	return x << 1
}

// expandEncKey advances a running 32-byte key schedule by one step and
// doubles rcon in GF(2^8) (a plain byte shift; the caller only ever cares
// about it reaching 0x80).
func expandEncKey(key *block.Block, rcon *byte) {
	k := key.Bytes()

	k[0] ^= sbox.Sub(k[29]) ^ *rcon
	k[1] ^= sbox.Sub(k[30])
	k[2] ^= sbox.Sub(k[31])
	k[3] ^= sbox.Sub(k[28])

	*rcon <<= 1

	for i := 4; i < 16; i++ {
		k[i] ^= k[i-4]
	}
	for i := 16; i < 20; i++ {
		k[i] ^= sbox.Sub(k[i-4])
	}
	for i := 20; i < 32; i++ {
		k[i] ^= k[i-4]
	}
}

// expandDecKey is the exact inverse of expandEncKey.
func expandDecKey(key *block.Block, rcon *byte) {
	k := key.Bytes()

	for i := 31; i >= 20; i-- {
		k[i] ^= k[i-4]
	}
	for i := 19; i >= 16; i-- {
		k[i] ^= sbox.Sub(k[i-4])
	}
	for i := 15; i >= 4; i-- {
		k[i] ^= k[i-4]
	}

	*rcon >>= 1

	k[0] ^= sbox.Sub(k[29]) ^ *rcon
	k[1] ^= sbox.Sub(k[30])
	k[2] ^= sbox.Sub(k[31])
	k[3] ^= sbox.Sub(k[28])
}
