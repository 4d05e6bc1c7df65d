// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

// Mode selects the block-chaining discipline used to drive the AES core
// across a multi-block message.
type Mode int

const (
	// ECB encrypts every block independently. No IV is used or emitted.
	ECB Mode = iota

	// CBC XORs each plaintext block with the previous ciphertext block
	// (the IV for the first block) before encryption.
	CBC

	// PCBC XORs each plaintext block with the XOR of the previous
	// plaintext and ciphertext blocks before encryption.
	PCBC

	// CFB128 turns the cipher into a self-synchronizing stream cipher,
	// 16 bytes of keystream per block.
	CFB128

	// CFB8 is CFB with an 8-bit feedback register; it touches only the
	// bytes actually present in a partially-filled final block.
	CFB8

	// OFB turns the cipher into a synchronous stream cipher by repeatedly
	// encrypting the IV register itself.
	OFB

	// CTR turns the cipher into a stream cipher by encrypting successive
	// values of an incrementing counter.
	CTR
)

// String names the mode.
func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case PCBC:
		return "PCBC"
	case CFB128:
		return "CFB-128"
	case CFB8:
		return "CFB-8"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	default:
		return "unknown"
	}
}

// Valid reports whether m names one of the seven defined chaining modes.
func (m Mode) Valid() bool {
	return m >= ECB && m <= CTR
}

// usesPadding reports whether m is one of the whole-block modes that pad
// their final block (ECB, CBC, PCBC).
func (m Mode) usesPadding() bool {
	return m == ECB || m == CBC || m == PCBC
}

// usesIV reports whether m chains an IV register across blocks.
func (m Mode) usesIV() bool {
	return m != ECB
}
