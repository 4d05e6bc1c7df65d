// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aescore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
	"github.com/vaultbyte/aes256/internal/padding"
)

func TestNew_RejectsShortKey(t *testing.T) {
	_, err := New(make([]byte, 31))
	assert.ErrorIs(t, err, aeserr.ErrInvalidKey)
}

// TestEncrypt_FIPSKnownAnswer reproduces the known-answer vector: a
// zero-filled 32-byte key and a plaintext block of 0x80 followed by
// fifteen zero bytes must encrypt to a fixed ciphertext.
func TestEncrypt_FIPSKnownAnswer(t *testing.T) {
	core, err := New(make([]byte, 32))
	require.NoError(t, err)

	plain := make([]byte, 16)
	plain[0] = 0x80
	buf := block.From(plain, 16, padding.AllNull)

	core.Encrypt(buf)

	want := []byte{
		0xdd, 0xc6, 0xbf, 0x79, 0x0c, 0x15, 0x76, 0x0d,
		0x8d, 0x9a, 0xeb, 0x6f, 0x9a, 0x75, 0xfd, 0x4e,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestDecrypt_InvertsEncrypt(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 7)
	}
	core, err := New(key)
	require.NoError(t, err)

	plain := make([]byte, 16)
	for i := range plain {
		plain[i] = byte(i * 3)
	}

	buf := block.From(plain, 16, padding.AllNull)
	core.Encrypt(buf)
	assert.NotEqual(t, plain, buf.Bytes())

	core.Decrypt(buf)
	assert.Equal(t, plain, buf.Bytes())
}

func TestEncrypt_DecryptRoundTripFuzz(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i*31 + 11)
	}
	core, err := New(key)
	require.NoError(t, err)

	for trial := 0; trial < 64; trial++ {
		plain := make([]byte, 16)
		for i := range plain {
			plain[i] = byte((trial*17 + i*13) % 256)
		}

		buf := block.From(plain, 16, padding.AllNull)
		core.Encrypt(buf)
		core.Decrypt(buf)
		assert.Equal(t, plain, buf.Bytes())
	}
}

func TestKey_ReturnsCopy(t *testing.T) {
	key := make([]byte, 32)
	key[0] = 0xab
	core, err := New(key)
	require.NoError(t, err)

	got := core.Key()
	got[0] = 0x00
	assert.Equal(t, byte(0xab), core.Key()[0])
}

func FuzzEncryptDecrypt(f *testing.F) {
	f.Add(make([]byte, 16))

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 5)
	}
	core, err := New(key)
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, data []byte) {
		plain := make([]byte, 16)
		copy(plain, data)

		buf := block.From(plain, 16, padding.AllNull)
		core.Encrypt(buf)
		core.Decrypt(buf)
		assert.Equal(t, plain, buf.Bytes())
	})
}
