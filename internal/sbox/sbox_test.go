// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package sbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardInverse_AreMutualInverses(t *testing.T) {
	for x := 0; x < 256; x++ {
		b := byte(x)
		assert.Equal(t, b, InvSub(Sub(b)), "round trip failed for 0x%02x", b)
	}
}

func TestForward_IsAPermutation(t *testing.T) {
	var seen [256]bool
	for x := 0; x < 256; x++ {
		v := Forward[x]
		assert.False(t, seen[v], "value 0x%02x repeated in forward table", v)
		seen[v] = true
	}
}

func TestSub_KnownValues(t *testing.T) {
	assert.Equal(t, byte(0x63), Sub(0x00))
	assert.Equal(t, byte(0x16), Sub(0xff))
	assert.Equal(t, byte(0xcd), Sub(0x80))
}
