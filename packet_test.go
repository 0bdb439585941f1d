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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylot/jdwp"
)

func newCodec(t *testing.T) *jdwp.Codec {
	codec, err := jdwp.NewCodec(jdwp.DefaultIDSizes())
	require.NoError(t, err)
	return codec
}

func TestHandshakeBytes(t *testing.T) {
	expected := []byte{
		0x4a, 0x44, 0x57, 0x50, 0x2d, 0x48, 0x61, 0x6e,
		0x64, 0x73, 0x68, 0x61, 0x6b, 0x65,
	}
	assert.Equal(t, expected, jdwp.EncodeHandshake())
	assert.True(t, jdwp.DecodeHandshake(expected))
	assert.False(t, jdwp.DecodeHandshake(expected[:13]))
	assert.False(t, jdwp.DecodeHandshake([]byte("JDWP-handshake")))
	assert.False(t, jdwp.DecodeHandshake(nil))
}

func TestHeaderReaders(t *testing.T) {
	pkt := []byte{
		0x00, 0x00, 0x00, 0x0b, // length
		0x00, 0x00, 0x00, 0x2a, // id
		0x00,       // flags
		0x01, 0x07, // cmdSet, cmdID
	}

	length, err := jdwp.ReadLength(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint32(11), length)

	id, err := jdwp.ReadPacketID(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	flags, err := jdwp.ReadFlags(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), flags)

	set, err := jdwp.ReadCommandSet(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), set)

	cmd, err := jdwp.ReadCommandID(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), cmd)

	assert.False(t, jdwp.IsReply(pkt))
	assert.False(t, jdwp.IsEvent(pkt))
}

func TestHeaderReadersRejectShortPackets(t *testing.T) {
	short := make([]byte, 10)
	_, err := jdwp.ReadLength(short)
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)
	_, err = jdwp.ReadErrorCode(short)
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)
	assert.False(t, jdwp.IsReply(short))
	assert.False(t, jdwp.IsEvent(short))
	assert.Error(t, jdwp.SetPacketID(short, 1))
}

func TestReplyClassification(t *testing.T) {
	reply := []byte{
		0x00, 0x00, 0x00, 0x0b,
		0x00, 0x00, 0x00, 0x01,
		0x80,       // reply flag
		0x00, 0x70, // error code 112
	}
	assert.True(t, jdwp.IsReply(reply))
	assert.False(t, jdwp.IsEvent(reply))

	code, err := jdwp.ReadErrorCode(reply)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ErrVMDead, code)
}

func TestEventClassification(t *testing.T) {
	event := []byte{
		0x00, 0x00, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x40, 0x64, // cmdSet 64, cmdID 100
		0x02, 0x00, 0x00, 0x00, 0x00,
	}
	assert.False(t, jdwp.IsReply(event))
	assert.True(t, jdwp.IsEvent(event))

	// A reply flag makes the same bytes a non-event.
	event[8] = 0x80
	assert.False(t, jdwp.IsEvent(event))
}

func TestSetPacketID(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeSuspendAll()
	require.NoError(t, err)

	require.NoError(t, jdwp.SetPacketID(pkt, 0x01020304))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, pkt[4:8])

	id, err := jdwp.ReadPacketID(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), id)
}

func TestDecodeAck(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.DecodeAck(nil)
	assert.NoError(t, err)
	_, err = codec.DecodeAck([]byte{})
	assert.NoError(t, err)
	_, err = codec.DecodeAck([]byte{0x00})
	assert.Error(t, err)
}

func TestBody(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeExit(42)
	require.NoError(t, err)

	body, err := jdwp.Body(pkt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x2a}, body)

	_, err = jdwp.Body(pkt[:5])
	assert.Error(t, err)
}
