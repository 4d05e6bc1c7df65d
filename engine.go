// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package aes256 implements a byte-oriented AES-256 block cipher and a
// uniform block-mode engine over it: ECB, CBC, PCBC, CFB-128, CFB-8, OFB,
// and CTR, each with pluggable padding, plus an embedded deterministic PRNG
// used to sample per-message initialization vectors.
//
// This package implements no authenticated encryption, no key derivation,
// and no asymmetric cryptography. It is a direct, from-scratch
// implementation of the AES-256 algorithm rather than a wrapper around
// crypto/aes, so its block transforms are not constant-time beyond what the
// algorithm naturally expresses.
package aes256

import (
	"github.com/vaultbyte/aes256/internal/aescore"
	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
	"github.com/vaultbyte/aes256/internal/padding"
	"github.com/vaultbyte/aes256/x/crypto/ctrprng"
)

const blockSize = 16

// Engine drives the AES-256 core through a chaining mode, managing IV
// state, padding, and the string/stream encrypt and decrypt façades. An
// Engine is not safe for concurrent use: every Encrypt/Decrypt call mutates
// its IV register and, when random IVs are in use, its embedded PRNG.
type Engine struct {
	core    *aescore.Core
	mode    Mode
	padding Padding
	userIV  *block.Block // nil when IVs are drawn from prng per message
	iv      *block.Block // the live IV register for the in-progress message
	prng    *ctrprng.PRNG
}

// New builds an Engine from a 32-byte key (only the first 32 bytes of a
// longer key are used) plus any options. The default configuration is CBC
// chaining with ISO/IEC 7816-4 padding and a PRNG-sampled IV per message.
func New(key []byte, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	core, err := aescore.New(key)
	if err != nil {
		return nil, err
	}

	if !cfg.mode.Valid() {
		return nil, aeserr.ErrInvalidMode
	}
	if !cfg.padding.Valid() {
		return nil, aeserr.ErrInvalidPadding
	}

	e := &Engine{core: core, mode: cfg.mode, padding: cfg.padding}

	if cfg.iv != nil {
		if err := e.SetIV(cfg.iv); err != nil {
			return nil, err
		}
	}

	prngOpts := make([]ctrprng.Option, 0, 2)
	if cfg.seed != nil {
		prngOpts = append(prngOpts, ctrprng.WithSeed(cfg.seed))
	}
	if cfg.prngKey != nil {
		prngOpts = append(prngOpts, ctrprng.WithKey(cfg.prngKey))
	}
	prng, err := ctrprng.New(prngOpts...)
	if err != nil {
		return nil, err
	}
	e.prng = prng

	return e, nil
}

// SetMode installs a new chaining mode. It returns aeserr.ErrInvalidMode if
// mode does not name one of the seven defined modes.
func (e *Engine) SetMode(mode Mode) error {
	if !mode.Valid() {
		return aeserr.ErrInvalidMode
	}
	e.mode = mode
	return nil
}

// SetPadding installs a new padding policy, used on the next message that
// pads (ECB, CBC, PCBC). It returns aeserr.ErrInvalidPadding if mode does
// not name one of the four defined padding modes.
func (e *Engine) SetPadding(mode Padding) error {
	if !mode.Valid() {
		return aeserr.ErrInvalidPadding
	}
	e.padding = mode
	return nil
}

// SetIV pins the engine to a user-supplied IV, used for every subsequent
// message instead of a PRNG-sampled one. Only the first 16 bytes of iv are
// used. Passing a nil or empty iv switches back to random per-message IVs.
// It returns aeserr.ErrInvalidIV if a non-empty iv is shorter than 16 bytes.
func (e *Engine) SetIV(iv []byte) error {
	if len(iv) == 0 {
		e.userIV = nil
		return nil
	}
	if len(iv) < blockSize {
		return aeserr.ErrInvalidIV
	}
	e.userIV = block.From(iv, blockSize, padding.AllNull)
	return nil
}

// GetIV returns the IV register as it stood after the most recent message,
// or nil if no message has been processed and no IV was set explicitly.
func (e *Engine) GetIV() []byte {
	if e.iv == nil {
		if e.userIV == nil {
			return nil
		}
		out := make([]byte, blockSize)
		copy(out, e.userIV.Bytes())
		return out
	}
	out := make([]byte, blockSize)
	copy(out, e.iv.Bytes())
	return out
}

// GetKey returns a copy of the 32-byte key this Engine was constructed
// with.
func (e *Engine) GetKey() []byte {
	return e.core.Key()
}

// UsesPadding reports whether the current mode pads its final block (ECB,
// CBC, PCBC).
func (e *Engine) UsesPadding() bool {
	return e.mode.usesPadding()
}

// startIV selects and returns the IV for a new message: the pinned
// user IV if one is set, otherwise 16 fresh bytes from the embedded PRNG.
// It also installs the selection as the engine's live IV register.
func (e *Engine) startIV() *block.Block {
	if e.userIV != nil {
		iv := block.New(blockSize, padding.AllNull)
		iv.CopyFrom(e.userIV.Bytes(), 0)
		e.iv = iv
		return e.iv
	}

	iv := block.New(blockSize, padding.AllNull)
	e.prng.GetBlock(iv)
	e.iv = iv
	return e.iv
}

// adoptIV installs iv (typically the 16 bytes consumed from the front of a
// ciphertext during decryption) as the engine's live IV register.
func (e *Engine) adoptIV(iv []byte) {
	b := block.New(blockSize, padding.AllNull)
	b.CopyFrom(iv, 0)
	e.iv = b
}
