// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

import (
	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
	"github.com/vaultbyte/aes256/internal/padding"
)

// Encrypt encrypts data and returns the ciphertext. For every non-ECB mode
// the output begins with the 16-byte IV used for this message (either the
// pinned IV set via SetIV, or 16 fresh bytes drawn from the embedded PRNG).
// ECB emits no IV.
//
// If noPaddingBlock is false (the default) and the mode pads (ECB, CBC,
// PCBC) and len(data) is an exact multiple of 16, a full extra block of
// fresh padding is appended so Decrypt can always unambiguously locate and
// strip the trailing pad.
func (e *Engine) Encrypt(data []byte, noPaddingBlock bool) ([]byte, error) {
	var out []byte

	if e.mode.usesIV() {
		iv := e.startIV()
		out = append(out, iv.Bytes()...)
	}

	usePadding := e.mode.usesPadding()
	isStream := !usePadding

	for used := 0; used < len(data); used += blockSize {
		end := used + blockSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[used:end]

		buf := block.From(chunk, blockSize, e.padding)
		e.encryptBlock(buf)

		if isStream && len(chunk) < blockSize {
			out = append(out, buf.Bytes()[:len(chunk)]...)
		} else {
			out = append(out, buf.Bytes()...)
		}
	}

	if usePadding && len(data)%blockSize == 0 && !noPaddingBlock {
		buf := block.New(blockSize, e.padding)
		e.encryptBlock(buf)
		out = append(out, buf.Bytes()...)
	}

	return out, nil
}

// EncryptString is a convenience wrapper around Encrypt for string payloads.
func (e *Engine) EncryptString(plaintext string, noPaddingBlock bool) ([]byte, error) {
	return e.Encrypt([]byte(plaintext), noPaddingBlock)
}

// Decrypt decrypts data, which must be shaped as Encrypt produces it: a
// 16-byte IV prefix for every non-ECB mode, followed by the ciphertext
// (block-aligned for ECB, CBC and PCBC). It returns aeserr.ErrBadLength if data violates the §4.5
// per-mode length rule, and aeserr.ErrGarbled if the trailing padding of a
// padded mode's last block fails validation (unless noPaddingBlock is set,
// in which case a block whose tail does not look like padding at all is
// returned unstripped rather than rejected).
func (e *Engine) Decrypt(data []byte, noPaddingBlock bool) ([]byte, error) {
	if err := validateDecryptLength(e.mode, noPaddingBlock, len(data)); err != nil {
		return nil, err
	}

	body := data
	if e.mode.usesIV() {
		e.adoptIV(data[:blockSize])
		body = data[blockSize:]
	}

	usePadding := e.mode.usesPadding()
	isStream := !usePadding

	var out []byte
	n := len(body)

	for used := 0; used < n; used += blockSize {
		end := used + blockSize
		if end > n {
			end = n
		}
		chunk := body[used:end]
		isLast := end == n

		buf := block.From(chunk, blockSize, e.padding)
		e.decryptBlock(buf)

		switch {
		case isStream && len(chunk) < blockSize:
			out = append(out, buf.Bytes()[:len(chunk)]...)

		case usePadding && isLast:
			stripped, err := buf.AsString(true)
			if err != nil {
				if !noPaddingBlock {
					return nil, err
				}
				stripped = buf.Bytes()
			}
			out = append(out, stripped...)

		default:
			out = append(out, buf.Bytes()...)
		}
	}

	return out, nil
}

// DecryptString is a convenience wrapper around Decrypt returning a string.
func (e *Engine) DecryptString(data []byte, noPaddingBlock bool) (string, error) {
	out, err := e.Decrypt(data, noPaddingBlock)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func validateDecryptLength(mode Mode, noPaddingBlock bool, n int) error {
	switch {
	case mode == ECB:
		if n < blockSize || n%blockSize != 0 {
			return aeserr.ErrBadLength
		}
	case mode == CBC || mode == PCBC:
		min := 2 * blockSize
		if noPaddingBlock {
			min = blockSize
		}
		if n < min || n%blockSize != 0 {
			return aeserr.ErrBadLength
		}
	default: // CFB128, CFB8, OFB, CTR
		if n < blockSize {
			return aeserr.ErrBadLength
		}
	}
	return nil
}

// encryptBlock applies the active mode's forward per-block transform to buf
// in place, updating the engine's live IV register as the mode requires.
func (e *Engine) encryptBlock(buf *block.Block) {
	switch e.mode {
	case ECB:
		e.core.Encrypt(buf)

	case CBC:
		buf.Xor(e.iv)
		e.core.Encrypt(buf)
		e.iv.CopyFrom(buf.Bytes(), 0)

	case PCBC:
		plainIn := block.New(blockSize, padding.AllNull)
		plainIn.CopyFrom(buf.Bytes(), 0)

		buf.Xor(e.iv)
		e.core.Encrypt(buf)

		newV := block.New(blockSize, padding.AllNull)
		newV.CopyFrom(buf.Bytes(), 0)
		newV.Xor(plainIn)
		e.iv = newV

	case CFB128:
		e.core.Encrypt(e.iv)
		buf.Xor(e.iv)
		e.iv.CopyFrom(buf.Bytes(), 0)

	case CFB8:
		e.cfb8(buf, true)

	case OFB:
		e.core.Encrypt(e.iv)
		buf.Xor(e.iv)

	case CTR:
		tmp := block.New(blockSize, padding.AllNull)
		tmp.CopyFrom(e.iv.Bytes(), 0)
		e.iv.Inc()
		e.core.Encrypt(tmp)
		buf.Xor(tmp)
	}
}

// decryptBlock applies the active mode's inverse per-block transform to buf
// in place, updating the engine's live IV register as the mode requires.
func (e *Engine) decryptBlock(buf *block.Block) {
	switch e.mode {
	case ECB:
		e.core.Decrypt(buf)

	case CBC:
		cipherIn := block.New(blockSize, padding.AllNull)
		cipherIn.CopyFrom(buf.Bytes(), 0)

		e.core.Decrypt(buf)
		buf.Xor(e.iv)
		e.iv = cipherIn

	case PCBC:
		cipherIn := block.New(blockSize, padding.AllNull)
		cipherIn.CopyFrom(buf.Bytes(), 0)

		e.core.Decrypt(buf)
		buf.Xor(e.iv)

		newV := block.New(blockSize, padding.AllNull)
		newV.CopyFrom(cipherIn.Bytes(), 0)
		newV.Xor(buf)
		e.iv = newV

	case CFB128:
		tmp := block.New(blockSize, padding.AllNull)
		tmp.CopyFrom(e.iv.Bytes(), 0)
		e.core.Encrypt(tmp)

		e.iv.CopyFrom(buf.Bytes(), 0)
		buf.Xor(tmp)

	case CFB8:
		e.cfb8(buf, false)

	case OFB:
		e.core.Encrypt(e.iv)
		buf.Xor(e.iv)

	case CTR:
		tmp := block.New(blockSize, padding.AllNull)
		tmp.CopyFrom(e.iv.Bytes(), 0)
		e.iv.Inc()
		e.core.Encrypt(tmp)
		buf.Xor(tmp)
	}
}

// cfb8 runs the 8-bit-feedback transform over only the first InitLen bytes
// of buf, so that trailing padding bytes never perturb the IV register.
func (e *Engine) cfb8(buf *block.Block, encrypting bool) {
	d := buf.Bytes()
	n := buf.InitLen()
	if n > len(d) {
		n = len(d)
	}

	for i := 0; i < n; i++ {
		tmp := block.New(blockSize, padding.AllNull)
		tmp.CopyFrom(e.iv.Bytes(), 0)
		e.core.Encrypt(tmp)

		in := d[i]
		d[i] ^= tmp.Bytes()[0]

		var feedback byte
		if encrypting {
			feedback = d[i]
		} else {
			feedback = in
		}

		e.iv.ShiftLeft(8)
		e.iv.SetAt(blockSize-1, feedback)
	}
}
