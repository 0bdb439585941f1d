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

package jdwp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylot/jdwp"
)

func TestTagSizes(t *testing.T) {
	sizes := jdwp.DefaultIDSizes()
	for _, test := range []struct {
		tag  jdwp.Tag
		size int32
	}{
		{jdwp.TagByte, 1},
		{jdwp.TagBoolean, 1},
		{jdwp.TagChar, 2},
		{jdwp.TagShort, 2},
		{jdwp.TagFloat, 4},
		{jdwp.TagInt, 4},
		{jdwp.TagDouble, 8},
		{jdwp.TagLong, 8},
		{jdwp.TagVoid, 0},
		{jdwp.TagObject, 8},
		{jdwp.TagArray, 8},
		{jdwp.TagString, 8},
		{jdwp.TagThread, 8},
		{jdwp.TagThreadGroup, 8},
		{jdwp.TagClassLoader, 8},
		{jdwp.TagClassObject, 8},
	} {
		size, err := test.tag.Size(sizes)
		require.NoError(t, err, "tag %v", test.tag)
		assert.Equal(t, test.size, size, "tag %v", test.tag)
	}

	smaller := sizes
	smaller.ObjectIDSize = 4
	size, err := jdwp.TagObject.Size(smaller)
	require.NoError(t, err)
	assert.Equal(t, int32(4), size)

	_, err = jdwp.Tag('Q').Size(sizes)
	assert.ErrorIs(t, err, jdwp.ErrInvalidTag)
}

func TestTagIsPrimitive(t *testing.T) {
	primitives := []jdwp.Tag{
		jdwp.TagByte, jdwp.TagChar, jdwp.TagFloat, jdwp.TagDouble,
		jdwp.TagInt, jdwp.TagLong, jdwp.TagShort, jdwp.TagVoid, jdwp.TagBoolean,
	}
	for _, tag := range primitives {
		assert.True(t, tag.IsPrimitive(), "tag %v", tag)
	}
	references := []jdwp.Tag{
		jdwp.TagArray, jdwp.TagObject, jdwp.TagString, jdwp.TagThread,
		jdwp.TagThreadGroup, jdwp.TagClassLoader, jdwp.TagClassObject,
	}
	for _, tag := range references {
		assert.False(t, tag.IsPrimitive(), "tag %v", tag)
	}
}

func TestValueEncodeInt(t *testing.T) {
	codec := newCodec(t)
	data, err := codec.EncodeValue(int(0x11223344))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x49, 0x11, 0x22, 0x33, 0x44}, data)

	v, err := codec.DecodeValue(data)
	require.NoError(t, err)
	assert.Equal(t, int(0x11223344), v)
}

func TestValueEncodeNullObject(t *testing.T) {
	codec := newCodec(t)
	data, err := codec.EncodeValue(jdwp.ObjectID(0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4c, 0, 0, 0, 0, 0, 0, 0, 0}, data)

	v, err := codec.DecodeValue(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ObjectID(0), v)
}

func TestValueRoundTrips(t *testing.T) {
	codec := newCodec(t)
	values := []jdwp.Value{
		true,
		false,
		byte(0xfe),
		jdwp.Char(0x2603),
		int16(-12345),
		int(-1),
		int64(math.MinInt64),
		float32(math.Pi),
		float64(-math.SqrtPhi),
		jdwp.ObjectID(0x102030405060708),
		jdwp.ThreadID(7),
		jdwp.ThreadGroupID(8),
		jdwp.StringID(9),
		jdwp.ClassLoaderID(10),
		jdwp.ClassObjectID(11),
		jdwp.ArrayID(12),
		nil, // void
	}
	for _, value := range values {
		data, err := codec.EncodeValue(value)
		require.NoError(t, err, "value %v", value)

		tag, err := jdwp.TagOf(value)
		require.NoError(t, err)
		size, err := tag.Size(codec.IDSizes())
		require.NoError(t, err)
		assert.Equal(t, int(size)+1, len(data), "value %v", value)

		got, err := codec.DecodeValue(data)
		require.NoError(t, err, "value %v", value)
		assert.Equal(t, value, got, "value %v", value)
	}
}

func TestValueFloatBitPatterns(t *testing.T) {
	codec := newCodec(t)

	nan32 := math.Float32frombits(0x7fc00001)
	data, err := codec.EncodeValue(nan32)
	require.NoError(t, err)
	v, err := codec.DecodeValue(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00001), math.Float32bits(v.(float32)))

	negZero := math.Copysign(0, -1)
	data, err = codec.EncodeValue(negZero)
	require.NoError(t, err)
	v, err = codec.DecodeValue(data)
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(negZero), math.Float64bits(v.(float64)))
}

func TestValueInvalidTag(t *testing.T) {
	codec := newCodec(t)
	_, err := codec.DecodeValue([]byte{'Q', 0, 0, 0, 0})
	assert.ErrorIs(t, err, jdwp.ErrInvalidTag)

	_, err = codec.EncodeValue(uint32(1))
	assert.ErrorIs(t, err, jdwp.ErrUnexpectedType)
}

func TestValueInsufficientData(t *testing.T) {
	codec := newCodec(t)
	_, err := codec.DecodeValue([]byte{0x49, 0x11, 0x22})
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)

	_, err = codec.DecodeValue([]byte{})
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)
}

func TestUntaggedValueRoundTrip(t *testing.T) {
	codec := newCodec(t)

	data, err := codec.EncodeUntaggedValue(int(0x11223344))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, data)

	v, err := codec.DecodeUntaggedValue(data, jdwp.TagInt)
	require.NoError(t, err)
	assert.Equal(t, int(0x11223344), v)

	data, err = codec.EncodeUntaggedValue(jdwp.ThreadID(5))
	require.NoError(t, err)
	assert.Equal(t, 8, len(data))

	v, err = codec.DecodeUntaggedValue(data, jdwp.TagThread)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ThreadID(5), v)
}

func TestArrayRegionPrimitiveRoundTrip(t *testing.T) {
	codec := newCodec(t)
	region := jdwp.ArrayRegion{
		Tag:    jdwp.TagInt,
		Values: jdwp.ValueSlice{int(1), int(-2), int(3)},
	}

	data, err := codec.EncodeArrayRegion(region)
	require.NoError(t, err)
	// Tag, count, then 3 untagged 4-byte elements.
	require.Equal(t, 1+4+3*4, len(data))
	assert.Equal(t, uint8('I'), data[0])

	got, err := codec.DecodeArrayRegion(data)
	require.NoError(t, err)
	assert.Equal(t, region, got)
}

func TestArrayRegionObjectRoundTrip(t *testing.T) {
	codec := newCodec(t)
	region := jdwp.ArrayRegion{
		Tag:    jdwp.TagObject,
		Values: jdwp.ValueSlice{jdwp.ObjectID(1), jdwp.ObjectID(0), jdwp.StringID(3)},
	}

	data, err := codec.EncodeArrayRegion(region)
	require.NoError(t, err)
	// Tag, count, then 3 tagged elements of 1+8 bytes each.
	require.Equal(t, 1+4+3*9, len(data))

	got, err := codec.DecodeArrayRegion(data)
	require.NoError(t, err)
	assert.Equal(t, region, got)
}

func TestArrayRegionEmpty(t *testing.T) {
	codec := newCodec(t)
	region := jdwp.ArrayRegion{Tag: jdwp.TagLong, Values: jdwp.ValueSlice{}}

	data, err := codec.EncodeArrayRegion(region)
	require.NoError(t, err)
	assert.Equal(t, []byte{'J', 0, 0, 0, 0}, data)

	got, err := codec.DecodeArrayRegion(data)
	require.NoError(t, err)
	assert.Equal(t, region, got)
}

func TestArrayRegionInvalidTag(t *testing.T) {
	codec := newCodec(t)
	_, err := codec.DecodeArrayRegion([]byte{'Q', 0, 0, 0, 1, 0})
	assert.ErrorIs(t, err, jdwp.ErrInvalidTag)
}
