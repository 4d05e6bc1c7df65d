// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ctrprng implements a deterministic counter-mode byte generator
// layered directly on this module's own byte-oriented AES-256 core.
//
// This is not a cryptographically vetted random number source. It exists
// to deterministically sample per-message initialization vectors, and its
// output is entirely a function of its key and counter: two PRNGs
// constructed with the same key and seed produce identical streams
// forever. Callers who need unpredictable IVs must supply their own
// high-entropy seed (and, for defense against a compromised binary,
// their own key) via WithSeed and WithKey.
package ctrprng

import (
	"github.com/vaultbyte/aes256/internal/aescore"
	"github.com/vaultbyte/aes256/internal/aeserr"
	"github.com/vaultbyte/aes256/internal/block"
	"github.com/vaultbyte/aes256/internal/padding"
)

const poolSize = 64

// defaultCounter and defaultKey are compiled-in constants, not secrets.
// They make this PRNG's output fully reproducible out of the box, which is
// convenient for tests and wrong for anything security sensitive; see the
// package doc.
var (
	defaultCounter = [16]byte{
		0xd0, 0x73, 0xb0, 0xb1, 0xc7, 0xda, 0x04, 0xde,
		0x58, 0x12, 0xa1, 0x4d, 0xf6, 0x4d, 0x0f, 0xd3,
	}
	defaultKey = [32]byte{
		0x08, 0x11, 0x34, 0xe3, 0x73, 0x86, 0xc7, 0xc4,
		0xd1, 0x24, 0x3c, 0xb0, 0x3c, 0xde, 0x0d, 0x73,
		0xea, 0xb2, 0xa6, 0x78, 0xb7, 0x0b, 0x01, 0x05,
		0x62, 0x93, 0xee, 0x98, 0xe2, 0xff, 0x46, 0x2f,
	}
)

// PRNG is a keyed counter-mode generator with a 64-byte ring-buffer pool of
// pre-computed keystream bytes. The zero value is not usable; construct one
// with New.
type PRNG struct {
	core    *aescore.Core
	counter *block.Block
	pool    [poolSize]byte
	low     int
	high    int
}

// New builds a PRNG from the compiled-in defaults, or the overrides supplied
// via WithKey / WithSeed. It returns aeserr.ErrInvalidSeed if a non-empty
// seed shorter than 16 bytes is supplied, or aeserr.ErrInvalidKey if a
// non-empty key shorter than 32 bytes is supplied.
func New(opts ...Option) (*PRNG, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	key := defaultKey[:]
	if len(cfg.key) != 0 {
		if len(cfg.key) < 32 {
			return nil, aeserr.ErrInvalidKey
		}
		key = cfg.key
	}

	core, err := aescore.New(key)
	if err != nil {
		return nil, err
	}

	counter := block.From(defaultCounter[:], 16, padding.AllNull)
	if len(cfg.seed) != 0 {
		if len(cfg.seed) < 16 {
			return nil, aeserr.ErrInvalidSeed
		}
		counter.XorBytes(cfg.seed[:16])
	}

	return &PRNG{core: core, counter: counter}, nil
}

// Reseed resets the counter to the compiled-in default XOR'd with seed and
// empties the pool, so the very next Get call re-derives keystream from the
// new counter. It returns aeserr.ErrInvalidSeed if seed is shorter than 16
// bytes.
func (p *PRNG) Reseed(seed []byte) error {
	if len(seed) < 16 {
		return aeserr.ErrInvalidSeed
	}

	p.counter = block.From(defaultCounter[:], 16, padding.AllNull)
	p.counter.XorBytes(seed[:16])
	p.low, p.high = 0, 0

	return nil
}

// Get returns n freshly drawn bytes.
func (p *PRNG) Get(n int) []byte {
	buf := make([]byte, n)
	p.GetBuffer(buf)
	return buf
}

// GetBuffer fills buf entirely with freshly drawn bytes, refilling the pool
// as needed.
func (p *PRNG) GetBuffer(buf []byte) {
	written := 0
	for written < len(buf) {
		if p.high == p.low {
			p.fillPool()
		}

		avail := p.high - p.low
		want := len(buf) - written
		if want > avail {
			want = avail
		}

		start := p.low % poolSize
		if start+want <= poolSize {
			copy(buf[written:written+want], p.pool[start:start+want])
		} else {
			first := poolSize - start
			copy(buf[written:written+first], p.pool[start:poolSize])
			copy(buf[written+first:written+want], p.pool[:want-first])
		}

		p.low += want
		written += want
	}
}

// GetBlock fills b with exactly b.Len() freshly drawn bytes. The crypto
// engine uses this to sample a message's initialization vector.
func (p *PRNG) GetBlock(b *block.Block) {
	buf := make([]byte, b.Len())
	p.GetBuffer(buf)
	b.CopyFrom(buf, 0)
}

// fillPool tops the pool back up to a full 64 bytes of lookahead, encrypting
// successive counter values and wrapping the cursors so they never
// overflow. Because every refilled chunk is 16 bytes and high always
// advances in steps of 16, high%poolSize never straddles the ring boundary
// mid-copy.
func (p *PRNG) fillPool() {
	for p.high-p.low < poolSize {
		snapshot := block.From(p.counter.Bytes(), 16, padding.AllNull)
		p.core.Encrypt(snapshot)

		offset := p.high % poolSize
		copy(p.pool[offset:offset+16], snapshot.Bytes())

		p.counter.Inc()
		p.high += 16
	}

	p.low %= poolSize
	p.high = p.low + poolSize
}
