// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

// Config holds the tunables accepted by New. Use the With* options rather
// than constructing Config directly.
type Config struct {
	mode    Mode
	padding Padding
	iv      []byte
	seed    []byte
	prngKey []byte
}

// DefaultConfig returns the engine's default configuration: CBC chaining
// with ISO/IEC 7816-4 padding and a PRNG-sampled IV per message.
func DefaultConfig() *Config {
	return &Config{
		mode:    CBC,
		padding: ISO7816_4,
	}
}

// Option configures an Engine at construction time.
type Option func(*Config)

// WithMode sets the initial chaining mode.
func WithMode(mode Mode) Option {
	return func(c *Config) { c.mode = mode }
}

// WithPadding sets the initial padding policy.
func WithPadding(mode Padding) Option {
	return func(c *Config) { c.padding = mode }
}

// WithIV pins the engine to a fixed initialization vector instead of
// drawing a fresh one from the PRNG for every message. iv must be at least
// 16 bytes; only the first 16 are used.
func WithIV(iv []byte) Option {
	return func(c *Config) { c.iv = iv }
}

// WithSeed seeds the engine's embedded PRNG, used to sample a random IV for
// every message when WithIV is not also supplied.
func WithSeed(seed []byte) Option {
	return func(c *Config) { c.seed = seed }
}

// WithPRNGKey overrides the compiled-in default key of the engine's
// embedded PRNG.
func WithPRNGKey(key []byte) Option {
	return func(c *Config) { c.prngKey = key }
}
