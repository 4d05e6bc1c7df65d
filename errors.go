// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

import (
	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/padding"
)

// Sentinel errors returned by this package. Compare against them with
// errors.Is.
var (
	// ErrInvalidKey means a key shorter than 32 bytes was supplied.
	ErrInvalidKey = aeserr.ErrInvalidKey

	// ErrInvalidIV means a non-empty IV shorter than 16 bytes was supplied.
	ErrInvalidIV = aeserr.ErrInvalidIV

	// ErrInvalidSeed means a non-empty PRNG seed shorter than 16 bytes was supplied.
	ErrInvalidSeed = aeserr.ErrInvalidSeed

	// ErrInvalidMode means an unrecognized Mode value was passed to SetMode.
	ErrInvalidMode = aeserr.ErrInvalidMode

	// ErrInvalidPadding means an unrecognized Padding value was passed to SetPadding.
	ErrInvalidPadding = aeserr.ErrInvalidPadding

	// ErrBadLength means ciphertext passed to Decrypt violates the per-mode length rule.
	ErrBadLength = aeserr.ErrBadLength

	// ErrGarbled means padding validation failed on the last decrypted block.
	ErrGarbled = aeserr.ErrGarbled

	// ErrStreamError wraps an I/O failure surfaced from a stream operation.
	ErrStreamError = aeserr.ErrStreamError
)

// Padding selects the algorithm used to fill out a partially-filled block
// before encryption, and to validate and strip it on decryption. It applies
// only to modes that operate on whole blocks (ECB, CBC, PCBC).
type Padding = padding.Mode

// Padding modes. See Padding for which chaining modes use them.
const (
	PKCS7     = padding.PKCS7
	ANSIX923  = padding.ANSIX923
	ISO7816_4 = padding.ISO7816_4
	AllNull   = padding.AllNull
)
