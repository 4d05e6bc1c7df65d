// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

import (
	"fmt"
	"io"

	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
)

// EncryptStream reads plaintext from r and writes ciphertext to w, framed
// exactly as Encrypt: a 16-byte IV prefix for non-ECB modes, followed by
// ciphertext blocks, with the final block of a padded mode padded out to
// a full 16 bytes (or an extra full pad block appended, per
// noPaddingBlock) and the final block of a streaming mode truncated to the
// number of plaintext bytes actually read. I/O failures are wrapped in
// aeserr.ErrStreamError.
func (e *Engine) EncryptStream(w io.Writer, r io.Reader, noPaddingBlock bool) error {
	if e.mode.usesIV() {
		iv := e.startIV()
		if err := writeAll(w, iv.Bytes()); err != nil {
			return err
		}
	}

	usePadding := e.mode.usesPadding()
	isStream := !usePadding

	buf := make([]byte, blockSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			blk := block.From(buf[:n], blockSize, e.padding)
			e.encryptBlock(blk)

			out := blk.Bytes()
			if isStream && n < blockSize {
				out = out[:n]
			}
			if werr := writeAll(w, out); werr != nil {
				return werr
			}
		}

		switch err {
		case nil:
			continue
		case io.EOF:
			if usePadding && !noPaddingBlock {
				padBlk := block.New(blockSize, e.padding)
				e.encryptBlock(padBlk)
				return writeAll(w, padBlk.Bytes())
			}
			return nil
		case io.ErrUnexpectedEOF:
			return nil
		default:
			return fmt.Errorf("%w: %v", aeserr.ErrStreamError, err)
		}
	}
}

// DecryptStream reads ciphertext from r, shaped as EncryptStream produces
// it, and writes plaintext to w. It buffers exactly one block of lookahead
// so it can recognize the final ciphertext block (to strip padding, or to
// avoid writing more plaintext bytes than were read) without needing to
// know the total stream length in advance.
func (e *Engine) DecryptStream(w io.Writer, r io.Reader, noPaddingBlock bool) error {
	if e.mode.usesIV() {
		ivBuf := make([]byte, blockSize)
		if _, err := io.ReadFull(r, ivBuf); err != nil {
			return aeserr.ErrBadLength
		}
		e.adoptIV(ivBuf)
	}

	var prev []byte
	buf := make([]byte, blockSize)

	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if prev != nil {
				if werr := e.decryptStreamBlock(w, prev, false, noPaddingBlock); werr != nil {
					return werr
				}
			}
			prev = append([]byte(nil), buf[:n]...)
		}

		switch err {
		case nil:
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			if prev != nil {
				return e.decryptStreamBlock(w, prev, true, noPaddingBlock)
			}
			return nil
		default:
			return fmt.Errorf("%w: %v", aeserr.ErrStreamError, err)
		}
	}
}

func (e *Engine) decryptStreamBlock(w io.Writer, chunk []byte, isLast, noPaddingBlock bool) error {
	usePadding := e.mode.usesPadding()
	isStream := !usePadding

	buf := block.From(chunk, blockSize, e.padding)
	e.decryptBlock(buf)

	switch {
	case isStream && len(chunk) < blockSize:
		return writeAll(w, buf.Bytes()[:len(chunk)])

	case usePadding && isLast:
		stripped, err := buf.AsString(true)
		if err != nil {
			if !noPaddingBlock {
				return err
			}
			stripped = buf.Bytes()
		}
		return writeAll(w, stripped)

	default:
		return writeAll(w, buf.Bytes())
	}
}

func writeAll(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", aeserr.ErrStreamError, err)
	}
	return nil
}
