// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}
	return key
}

func TestNew_RejectsShortKey(t *testing.T) {
	_, err := New(make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNew_DefaultsToCBCAndISO7816_4(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)
	assert.Equal(t, CBC, e.mode)
	assert.Equal(t, ISO7816_4, e.padding)
	assert.True(t, e.UsesPadding())
}

func TestNew_WithModeAndPadding(t *testing.T) {
	e, err := New(testKey(), WithMode(CTR), WithPadding(PKCS7))
	require.NoError(t, err)
	assert.False(t, e.UsesPadding())
}

func TestSetMode_RejectsInvalid(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetMode(Mode(99)), ErrInvalidMode)
}

func TestSetPadding_RejectsInvalid(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetPadding(Padding(99)), ErrInvalidPadding)
}

func TestSetIV_RejectsShort(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetIV(make([]byte, 15)), ErrInvalidIV)
}

func TestSetIV_EmptyRevertsToRandom(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)

	require.NoError(t, e.SetIV(make([]byte, 16)))
	assert.NotNil(t, e.userIV)

	require.NoError(t, e.SetIV(nil))
	assert.Nil(t, e.userIV)
}

func TestGetKey_ReturnsConstructorKey(t *testing.T) {
	key := testKey()
	e, err := New(key)
	require.NoError(t, err)
	assert.Equal(t, key, e.GetKey())
}

func TestGetIV_NilBeforeAnyMessage(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)
	assert.Nil(t, e.GetIV())
}

func TestGetIV_ReflectsPinnedIV(t *testing.T) {
	e, err := New(testKey())
	require.NoError(t, err)

	iv := make([]byte, 16)
	iv[0] = 0xaa
	require.NoError(t, e.SetIV(iv))
	assert.Equal(t, iv, e.GetIV())
}
