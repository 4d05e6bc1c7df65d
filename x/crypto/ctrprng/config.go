// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ctrprng

// Config holds the tunables accepted by New. Use the With* options rather
// than constructing Config directly; the zero value is not meaningful.
type Config struct {
	key  []byte
	seed []byte
}

// DefaultConfig returns a Config with no key or seed override, meaning the
// compiled-in defaults are used verbatim.
func DefaultConfig() *Config {
	return &Config{}
}

// Option configures a PRNG at construction time.
type Option func(*Config)

// WithKey overrides the compiled-in default 32-byte AES key. Security
// critical use of this PRNG requires supplying both WithKey and WithSeed;
// without them every PRNG in every process produces the same stream.
func WithKey(key []byte) Option {
	return func(c *Config) { c.key = key }
}

// WithSeed XORs seed into the compiled-in default counter. The caller's
// seed, not the default counter, is what makes output distinguishable
// across instances.
func WithSeed(seed []byte) Option {
	return func(c *Config) { c.seed = seed }
}
