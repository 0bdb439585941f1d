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

// Package jdwp implements encoding and decoding of Java Debug Wire Protocol
// packets.
//
// The package is a pure codec: command encoders produce complete framed
// packets, reply and event decoders consume packet bodies, and nothing here
// performs I/O or holds session state. A transport layer owns the socket,
// assigns packet ids with SetPacketID, and correlates reply ids to pending
// requests.
//
// A Codec is parameterized by the identifier sizes negotiated with the
// VirtualMachine IDSizes command and is immutable once constructed, so a
// single instance may be shared by any number of concurrent callers.
package jdwp

import (
	"bytes"

	"github.com/go-logr/logr"
)

var handshake = []byte("JDWP-Handshake")

// Codec encodes command packets and decodes reply and event packet bodies.
type Codec struct {
	idSizes IDSizes
	log     logr.Logger
}

// NewCodec returns a codec using the given negotiated identifier sizes.
func NewCodec(sizes IDSizes) (*Codec, error) {
	if err := sizes.validate(); err != nil {
		return nil, err
	}
	return &Codec{idSizes: sizes, log: logr.Discard()}, nil
}

// WithLogger returns a copy of the codec that traces packet encoding and
// decoding to l at verbosity 2.
func (c *Codec) WithLogger(l logr.Logger) *Codec {
	return &Codec{idSizes: c.idSizes, log: l}
}

// IDSizes returns the identifier sizes the codec was constructed with.
func (c *Codec) IDSizes() IDSizes {
	return c.idSizes
}

// EncodeHandshake returns the 14 handshake bytes each side must send as the
// very first bytes over a newly established transport.
func EncodeHandshake() []byte {
	return append([]byte(nil), handshake...)
}

// DecodeHandshake reports whether data is exactly the expected handshake.
func DecodeHandshake(data []byte) bool {
	return bytes.Equal(data, handshake)
}
