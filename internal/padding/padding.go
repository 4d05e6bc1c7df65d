// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package padding implements the four padding algorithms used to fill out
// the trailing bytes of a partially-filled block cipher buffer: PKCS#7,
// ANSI X9.23, ISO/IEC 7816-4, and all-null padding.
package padding

import (
	"golang.org/x/exp/slices"

	"github.com/vaultbyte/aes256/internal/aeserr"
)

// Mode selects a padding algorithm.
type Mode byte

const (
	// PKCS7 fills every padding byte with the pad length (RFC 5652).
	PKCS7 Mode = iota

	// ANSIX923 zero-fills the padding except the last byte, which holds the pad length.
	ANSIX923

	// ISO7816_4 writes a single 0x80 byte followed by zeros (ISO/IEC 7816-4, ISO 9797-1 method 2).
	ISO7816_4

	// AllNull zero-fills the entire padding region.
	AllNull
)

// String returns the name of the padding mode.
func (m Mode) String() string {
	switch m {
	case PKCS7:
		return "PKCS7"
	case ANSIX923:
		return "ANSIX9.23"
	case ISO7816_4:
		return "ISO7816-4"
	case AllNull:
		return "ALL_NULL"
	default:
		return "unknown"
	}
}

// Valid reports whether m names one of the four defined padding modes.
func (m Mode) Valid() bool {
	return m == PKCS7 || m == ANSIX923 || m == ISO7816_4 || m == AllNull
}

// Pad fills buf[length:] with padding bytes for the given mode. buf must
// already be sized to the target block length; length is the number of
// "real" bytes already present at the front of buf. Pad is a no-op when
// length is at or beyond len(buf).
func Pad(buf []byte, length int, mode Mode) {
	n := len(buf)
	if length >= n {
		return
	}

	switch mode {
	case PKCS7:
		v := byte(n - length)
		for i := length; i < n; i++ {
			buf[i] = v
		}

	case ANSIX923:
		for i := length; i < n-1; i++ {
			buf[i] = 0
		}
		buf[n-1] = byte(n - length)

	case ISO7816_4:
		buf[length] = 0x80
		for i := length + 1; i < n; i++ {
			buf[i] = 0
		}

	case AllNull:
		for i := length; i < n; i++ {
			buf[i] = 0
		}
	}
}

// Unpad validates the padding at the tail of buf for the given mode and
// returns the number of real bytes that precede it. It returns
// aeserr.ErrGarbled when the trailing bytes don't conform to the mode.
func Unpad(buf []byte, mode Mode) (int, error) {
	n := len(buf)
	if n == 0 {
		return 0, nil
	}

	switch mode {
	case PKCS7:
		p := int(buf[n-1])
		if p <= 0 || p > n {
			return 0, aeserr.ErrGarbled
		}
		pos := n - p
		want := make([]byte, p-1)
		for i := range want {
			want[i] = byte(p)
		}
		if !slices.Equal(buf[pos:n-1], want) {
			return 0, aeserr.ErrGarbled
		}
		return pos, nil

	case ANSIX923:
		p := int(buf[n-1])
		if p <= 0 || p > n {
			return 0, aeserr.ErrGarbled
		}
		pos := n - p
		zeros := make([]byte, p-1)
		if !slices.Equal(buf[pos:n-1], zeros) {
			return 0, aeserr.ErrGarbled
		}
		return pos, nil

	case ISO7816_4:
		pos := n - 1
		for pos > 0 && buf[pos] == 0 {
			pos--
		}
		if buf[pos] != 0x80 {
			return 0, aeserr.ErrGarbled
		}
		return pos, nil

	case AllNull:
		pos := n - 1
		for pos > 0 && buf[pos] == 0 {
			pos--
		}
		if buf[pos] == 0 {
			return 0, nil
		}
		return pos + 1, nil

	default:
		return 0, aeserr.ErrInvalidPadding
	}
}
