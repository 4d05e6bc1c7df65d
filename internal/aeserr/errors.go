// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package aeserr holds the sentinel errors shared by every package in this
// module. Centralizing them here lets internal packages (sbox, block,
// padding, aescore, ctrprng) and the root aes256 package all compare against
// and return the exact same error values without an import cycle back to
// the root package.
package aeserr

import "errors"

var (
	// ErrInvalidKey means a key shorter than 32 bytes was supplied.
	ErrInvalidKey = errors.New("aes256: key must contain at least 32 bytes")

	// ErrInvalidIV means a non-empty IV shorter than 16 bytes was supplied.
	ErrInvalidIV = errors.New("aes256: IV must contain at least 16 bytes")

	// ErrInvalidSeed means a non-empty PRNG seed shorter than 16 bytes was supplied.
	ErrInvalidSeed = errors.New("aes256: seed must contain at least 16 bytes")

	// ErrInvalidMode means an unrecognized chaining mode identifier was requested.
	ErrInvalidMode = errors.New("aes256: invalid chaining mode")

	// ErrInvalidPadding means an unrecognized padding mode identifier was requested.
	ErrInvalidPadding = errors.New("aes256: invalid padding mode")

	// ErrBadLength means ciphertext passed to Decrypt violates the per-mode length rule.
	ErrBadLength = errors.New("aes256: length of data to decrypt is incorrect")

	// ErrGarbled means padding validation failed on the last decrypted block.
	ErrGarbled = errors.New("aes256: data to decrypt is garbled")

	// ErrOutOfRange means a bounds-checked block index was at or beyond the block size.
	ErrOutOfRange = errors.New("aes256: index out of range")

	// ErrStreamError wraps an I/O failure surfaced from a stream operation.
	ErrStreamError = errors.New("aes256: stream read or write failed")
)
