// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endian_test

import (
	"bytes"
	eb "encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylot/jdwp/data/binary"
	"github.com/skylot/jdwp/data/endian"
)

func TestReadWriteRoundTrip(t *testing.T) {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)

	w.Bool(true)
	w.Bool(false)
	w.Uint8(0xa5)
	w.Int8(-1)
	w.Uint16(0x1234)
	w.Int16(-2)
	w.Uint32(0x12345678)
	w.Int32(-3)
	w.Uint64(0x123456789abcdef0)
	w.Int64(-4)
	w.Float32(1.5)
	w.Float64(-2.25)
	w.Data([]byte("data"))
	require.NoError(t, w.Error())

	r := endian.Reader(bytes.NewReader(buf.Bytes()), eb.BigEndian)
	assert.Equal(t, true, r.Bool())
	assert.Equal(t, false, r.Bool())
	assert.Equal(t, uint8(0xa5), r.Uint8())
	assert.Equal(t, int8(-1), r.Int8())
	assert.Equal(t, uint16(0x1234), r.Uint16())
	assert.Equal(t, int16(-2), r.Int16())
	assert.Equal(t, uint32(0x12345678), r.Uint32())
	assert.Equal(t, int32(-3), r.Int32())
	assert.Equal(t, uint64(0x123456789abcdef0), r.Uint64())
	assert.Equal(t, int64(-4), r.Int64())
	assert.Equal(t, float32(1.5), r.Float32())
	assert.Equal(t, float64(-2.25), r.Float64())
	data := make([]byte, 4)
	r.Data(data)
	assert.Equal(t, []byte("data"), data)
	assert.NoError(t, r.Error())
}

func TestWriteBigEndianByteOrder(t *testing.T) {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	w.Uint32(0x11223344)
	require.NoError(t, w.Error())
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, buf.Bytes())
}

func TestFloatBitPatternsSurviveRoundTrip(t *testing.T) {
	for _, bits := range []uint64{
		math.Float64bits(math.NaN()),
		math.Float64bits(math.Inf(-1)),
		math.Float64bits(math.Copysign(0, -1)),
		0x7ff8000000000001, // NaN with a payload
	} {
		buf := bytes.Buffer{}
		w := endian.Writer(&buf, eb.BigEndian)
		w.Float64(math.Float64frombits(bits))
		require.NoError(t, w.Error())

		r := endian.Reader(bytes.NewReader(buf.Bytes()), eb.BigEndian)
		assert.Equal(t, bits, math.Float64bits(r.Float64()))
		assert.NoError(t, r.Error())
	}
}

func TestReaderSticksOnTruncation(t *testing.T) {
	r := endian.Reader(bytes.NewReader([]byte{0x01, 0x02}), eb.BigEndian)
	r.Uint32()
	assert.Error(t, r.Error())
	// All subsequent reads return zero values.
	assert.Equal(t, uint8(0), r.Uint8())
	assert.Equal(t, uint64(0), r.Uint64())
}

func TestReadUintWidths(t *testing.T) {
	for _, test := range []struct {
		size  int32
		value uint64
	}{
		{1, 0xff},
		{2, 0xfffe},
		{4, 0x12345678},
		{8, 0x123456789abcdef0},
		{3, 0xabcdef},
	} {
		buf := bytes.Buffer{}
		w := endian.Writer(&buf, eb.BigEndian)
		binary.WriteUint(w, test.size, test.value)
		require.NoError(t, w.Error())
		require.Equal(t, int(test.size), buf.Len())

		r := endian.Reader(bytes.NewReader(buf.Bytes()), eb.BigEndian)
		assert.Equal(t, test.value, binary.ReadUint(r, test.size))
		assert.NoError(t, r.Error())
	}
}

func TestReadUintRejectsBadWidths(t *testing.T) {
	for _, size := range []int32{0, 9, -1} {
		r := endian.Reader(bytes.NewReader([]byte{1, 2, 3, 4}), eb.BigEndian)
		binary.ReadUint(r, size)
		assert.Error(t, r.Error())

		buf := bytes.Buffer{}
		w := endian.Writer(&buf, eb.BigEndian)
		binary.WriteUint(w, size, 1)
		assert.Error(t, w.Error())
	}
}

func TestWriteUintTakesLowBytes(t *testing.T) {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	binary.WriteUint(w, 2, 0x11223344)
	require.NoError(t, w.Error())
	assert.Equal(t, []byte{0x33, 0x44}, buf.Bytes())
}

func TestReadIntSignExtends(t *testing.T) {
	r := endian.Reader(bytes.NewReader([]byte{0xff, 0xfe}), eb.BigEndian)
	assert.Equal(t, int64(-2), binary.ReadInt(r, 2))
	assert.NoError(t, r.Error())
}
