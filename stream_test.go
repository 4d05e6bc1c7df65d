// Copyright (c) 2024-2026 the aes256 authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package aes256

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_RoundTripsAcrossModesAndLengths(t *testing.T) {
	key := testKey()
	lengths := []int{0, 1, 15, 16, 17, 100}

	for _, mode := range allModes {
		for _, n := range lengths {
			plain := make([]byte, n)
			for i := range plain {
				plain[i] = byte(i * 7)
			}

			enc, err := New(key, WithMode(mode))
			require.NoError(t, err)

			var ct bytes.Buffer
			require.NoError(t, enc.EncryptStream(&ct, bytes.NewReader(plain), false))

			dec, err := New(key, WithMode(mode))
			require.NoError(t, err)

			var pt bytes.Buffer
			require.NoError(t, dec.DecryptStream(&pt, bytes.NewReader(ct.Bytes()), false))

			assert.Equal(t, plain, pt.Bytes(), "mode %s length %d", mode, n)
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestEncryptStream_SurfacesReadError(t *testing.T) {
	e, err := New(testKey(), WithMode(CBC))
	require.NoError(t, err)

	var out bytes.Buffer
	err = e.EncryptStream(&out, errReader{}, false)
	assert.ErrorIs(t, err, ErrStreamError)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestEncryptStream_SurfacesWriteError(t *testing.T) {
	e, err := New(testKey(), WithMode(ECB))
	require.NoError(t, err)

	err = e.EncryptStream(errWriter{}, bytes.NewReader([]byte("hello")), false)
	assert.ErrorIs(t, err, ErrStreamError)
}

func TestDecryptStream_SurfacesShortIV(t *testing.T) {
	e, err := New(testKey(), WithMode(CBC))
	require.NoError(t, err)

	var out bytes.Buffer
	err = e.DecryptStream(&out, bytes.NewReader(make([]byte, 5)), false)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestDecryptStream_EmptyStreamIsNoOpForECB(t *testing.T) {
	e, err := New(testKey(), WithMode(ECB))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, e.DecryptStream(&out, bytes.NewReader(nil), false))
	assert.Equal(t, 0, out.Len())
}

var _ io.Reader = errReader{}
var _ io.Writer = errWriter{}
